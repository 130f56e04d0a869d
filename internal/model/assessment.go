package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssessmentStatus string

const (
	StatusDraft     AssessmentStatus = "draft"
	StatusActive    AssessmentStatus = "active"
	StatusCompleted AssessmentStatus = "completed"
	StatusRejected  AssessmentStatus = "rejected"
	StatusExpired   AssessmentStatus = "expired"
)

type Assessment struct {
	ID                  uint                                  `gorm:"primarykey" json:"id"`
	Title               string                                `json:"title" gorm:"not null"`
	Description         string                                `json:"description,omitempty" gorm:"type:text"`
	RecruiterID         uint                                  `json:"recruiter_id" gorm:"not null;index"`
	CandidateID         *uint                                 `json:"candidate_id,omitempty" gorm:"index"`
	RequiredSkills      datatypes.JSONSlice[string]           `json:"required_skills" gorm:"not null"`
	ThresholdPercentage int                                   `json:"threshold_percentage" gorm:"not null;default:70"`
	Status              AssessmentStatus                      `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	ResumeText          string                                `json:"-" gorm:"type:text"`
	ResumeFilename      string                                `json:"resume_filename,omitempty"`
	SkillMatches        datatypes.JSONType[map[string]bool]   `json:"skill_matches"`
	Eligibility         datatypes.JSONType[EligibilityReport] `json:"eligibility"`
	Questions           []Question                            `json:"questions,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StartedAt           *time.Time                            `json:"started_at,omitempty"`
	CompletedAt         *time.Time                            `json:"completed_at,omitempty"`
	ExpiresAt           *time.Time                            `json:"expires_at,omitempty"`
	CreatedAt           time.Time                             `json:"created_at"`
	UpdatedAt           time.Time                             `json:"updated_at"`
	DeletedAt           gorm.DeletedAt                        `gorm:"index" json:"-"`
}

// IsExpired reports whether the assessment deadline has passed at now.
func (a *Assessment) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && !now.Before(*a.ExpiresAt)
}
