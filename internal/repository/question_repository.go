package repository

import (
	"context"

	"github.com/lshigami/skillgate/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository has no update or delete path: questions are immutable
// once an assessment is started.
type QuestionRepository interface {
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByAssessmentID(ctx context.Context, assessmentID uint) ([]model.Question, error)
	CountByAssessmentID(ctx context.Context, assessmentID uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&questions).Error)
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByAssessmentID(ctx context.Context, assessmentID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, translate(err)
}

func (r *questionRepository) CountByAssessmentID(ctx context.Context, assessmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("assessment_id = ?", assessmentID).Count(&count).Error
	return count, translate(err)
}
