package model

import (
	"time"
)

// Answer is unique per (assessment, question); the index backs the
// single-answer rule under concurrent submissions.
type Answer struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	AssessmentID     uint      `json:"assessment_id" gorm:"not null;uniqueIndex:idx_answers_assessment_question"`
	QuestionID       uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_assessment_question"`
	Question         Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText       string    `json:"answer_text" gorm:"type:text;not null"`
	AIScore          *float64  `json:"ai_score,omitempty"`
	AIFeedback       string    `json:"ai_feedback,omitempty" gorm:"type:text"`
	GradingDegraded  bool      `json:"grading_degraded" gorm:"not null;default:false"`
	TimeSpentSeconds *int      `json:"time_spent_seconds,omitempty"`
	AnsweredAt       time.Time `json:"answered_at" gorm:"autoCreateTime"`
}
