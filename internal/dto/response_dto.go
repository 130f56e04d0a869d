package dto

import (
	"time"

	"github.com/lshigami/skillgate/internal/model"
)

type QuestionResponse struct {
	ID           uint      `json:"id"`
	AssessmentID uint      `json:"assessment_id"`
	Skill        string    `json:"skill"`
	Text         string    `json:"question_text"`
	Type         string    `json:"question_type"`
	Difficulty   string    `json:"difficulty"`
	OrderIndex   int       `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
}

type AnswerResponse struct {
	ID               uint              `json:"id"`
	AssessmentID     uint              `json:"assessment_id"`
	QuestionID       uint              `json:"question_id"`
	Question         *QuestionResponse `json:"question,omitempty"`
	AnswerText       string            `json:"answer_text"`
	AIScore          *float64          `json:"ai_score"`
	AIFeedback       string            `json:"ai_feedback"`
	GradingDegraded  bool              `json:"grading_degraded"`
	TimeSpentSeconds *int              `json:"time_spent_seconds,omitempty"`
	AnsweredAt       time.Time         `json:"answered_at"`
}

// PublicAssessmentResponse is what a candidate sees before starting.
type PublicAssessmentResponse struct {
	ID                  uint       `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	RequiredSkills      []string   `json:"required_skills"`
	ThresholdPercentage int        `json:"threshold_percentage"`
	Status              string     `json:"status"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
}

type AssessmentResponse struct {
	ID                  uint                     `json:"id"`
	Title               string                   `json:"title"`
	Description         string                   `json:"description,omitempty"`
	RecruiterID         uint                     `json:"recruiter_id"`
	CandidateID         *uint                    `json:"candidate_id,omitempty"`
	RequiredSkills      []string                 `json:"required_skills"`
	ThresholdPercentage int                      `json:"threshold_percentage"`
	Status              string                   `json:"status"`
	ResumeFilename      string                   `json:"resume_filename,omitempty"`
	Matches             map[string]bool          `json:"skill_matches,omitempty"`
	EligibilityReport   *model.EligibilityReport `json:"eligibility,omitempty"`
	Answers             []AnswerResponse         `json:"answers,omitempty"`
	Result              *ResultResponse          `json:"result,omitempty"`
	StartedAt           *time.Time               `json:"started_at,omitempty"`
	CompletedAt         *time.Time               `json:"completed_at,omitempty"`
	ExpiresAt           *time.Time               `json:"expires_at,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

type StartAssessmentResponse struct {
	AssessmentID  uint                    `json:"assessment_id"`
	Status        string                  `json:"status"`
	Eligible      bool                    `json:"eligible"`
	Eligibility   model.EligibilityReport `json:"eligibility"`
	QuestionCount int                     `json:"question_count"`
	Message       string                  `json:"message"`
}

type ProgressResponse struct {
	AssessmentID       uint              `json:"assessment_id"`
	Status             string            `json:"status"`
	TotalQuestions     int               `json:"total_questions"`
	AnsweredQuestions  int               `json:"answered_questions"`
	ProgressPercentage float64           `json:"progress_percentage"`
	CurrentQuestion    *QuestionResponse `json:"current_question"`
}

type ResultResponse struct {
	ID               uint               `json:"id"`
	AssessmentID     uint               `json:"assessment_id"`
	OverallScore     float64            `json:"overall_score"`
	Scores           map[string]float64 `json:"skill_scores"`
	TotalQuestions   int                `json:"total_questions"`
	TotalTimeSeconds int                `json:"total_time_seconds"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	Recommendations  string             `json:"recommendations"`
	IsPassed         bool               `json:"is_passed"`
	DegradedAnswers  int                `json:"degraded_answers"`
	CreatedAt        time.Time          `json:"created_at"`
}

// CandidateResultResponse pairs a candidate with their graded result.
type CandidateResultResponse struct {
	CandidateID uint           `json:"candidate_id"`
	Status      string         `json:"status"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Result      ResultResponse `json:"result"`
}

type AssessmentCandidatesResponse struct {
	Assessment AssessmentResponse        `json:"assessment"`
	Candidates []CandidateResultResponse `json:"candidates"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
