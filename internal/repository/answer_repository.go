package repository

import (
	"context"

	"github.com/lshigami/skillgate/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// Create returns ErrDuplicate when the question already has an answer.
	Create(ctx context.Context, answer *model.Answer) error
	ExistsForQuestion(ctx context.Context, assessmentID, questionID uint) (bool, error)
	FindByAssessmentIDWithQuestions(ctx context.Context, assessmentID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return translate(r.db.WithContext(ctx).Omit("Question").Create(answer).Error)
}

func (r *answerRepository) ExistsForQuestion(ctx context.Context, assessmentID, questionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *answerRepository) FindByAssessmentIDWithQuestions(ctx context.Context, assessmentID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("assessment_id = ?", assessmentID).
		Order("answered_at ASC").
		Find(&answers).Error
	return answers, translate(err)
}
