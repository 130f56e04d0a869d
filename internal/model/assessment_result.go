package model

import (
	"time"

	"gorm.io/datatypes"
)

type AssessmentResult struct {
	ID               uint                                   `gorm:"primarykey" json:"id"`
	AssessmentID     uint                                   `json:"assessment_id" gorm:"not null;uniqueIndex"`
	OverallScore     float64                                `json:"overall_score" gorm:"not null"`
	SkillScores      datatypes.JSONType[map[string]float64] `json:"skill_scores" gorm:"not null"`
	TotalQuestions   int                                    `json:"total_questions" gorm:"not null"`
	TotalTimeSeconds int                                    `json:"total_time_seconds"`
	Strengths        datatypes.JSONSlice[string]            `json:"strengths"`
	Weaknesses       datatypes.JSONSlice[string]            `json:"weaknesses"`
	Recommendations  string                                 `json:"recommendations" gorm:"type:text"`
	IsPassed         bool                                   `json:"is_passed" gorm:"not null"`
	DegradedAnswers  int                                    `json:"degraded_answers" gorm:"not null;default:0"`
	CreatedAt        time.Time                              `json:"created_at"`
}
