package dto

// CreateAssessmentRequest is sent by a recruiter. RequiredSkills is the raw
// comma-separated skill list, e.g. "python, sql, Machine Learning".
type CreateAssessmentRequest struct {
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description"`
	RequiredSkills      string `json:"required_skills" binding:"required"`
	ThresholdPercentage *int   `json:"threshold_percentage" binding:"omitempty,min=0,max=100"` // defaults to 70
	RecruiterID         uint   `json:"recruiter_id" binding:"required"`
}

type StartAssessmentRequest struct {
	CandidateID    uint   `json:"candidate_id" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
	ResumeFilename string `json:"resume_filename"`
}

type SubmitAnswerRequest struct {
	CandidateID      uint   `json:"candidate_id" binding:"required"`
	AnswerText       string `json:"answer_text" binding:"required"`
	TimeSpentSeconds *int   `json:"time_spent_seconds" binding:"omitempty,min=0"`
}

type CompleteAssessmentRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}
