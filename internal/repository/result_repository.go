package repository

import (
	"context"

	"github.com/lshigami/skillgate/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(ctx context.Context, result *model.AssessmentResult) error
	FindByAssessmentID(ctx context.Context, assessmentID uint) (*model.AssessmentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *model.AssessmentResult) error {
	return translate(r.db.WithContext(ctx).Create(result).Error)
}

func (r *resultRepository) FindByAssessmentID(ctx context.Context, assessmentID uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	if err := r.db.WithContext(ctx).Where("assessment_id = ?", assessmentID).First(&result).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}
