package model

import (
	"time"
)

const (
	QuestionTypeText  = "text"
	DifficultyDefault = "medium"
)

type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;index"`
	Skill        string    `json:"skill" gorm:"type:varchar(100);not null"`
	Text         string    `json:"question_text" gorm:"type:text;not null"`
	Type         string    `json:"question_type" gorm:"type:varchar(20);not null;default:'text'"`
	Difficulty   string    `json:"difficulty" gorm:"type:varchar(20);not null;default:'medium'"`
	OrderIndex   int       `json:"order_index" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
