package repository

import (
	"context"

	"github.com/lshigami/skillgate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	Update(ctx context.Context, assessment *model.Assessment) error
	FindByID(ctx context.Context, id uint) (*model.Assessment, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Assessment, error)
	FindAllByRecruiter(ctx context.Context, recruiterID uint) ([]model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	return translate(r.db.WithContext(ctx).Create(assessment).Error)
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) error {
	// Omit associations; questions are written through QuestionRepository only.
	return translate(r.db.WithContext(ctx).Omit("Questions").Save(assessment).Error)
}

func (r *assessmentRepository) FindByID(ctx context.Context, id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.WithContext(ctx).First(&assessment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&assessment, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByRecruiter(ctx context.Context, recruiterID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, translate(err)
}
