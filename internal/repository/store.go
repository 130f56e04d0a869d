package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories and runs multi-record writes atomically.
type Store interface {
	Assessments() AssessmentRepository
	Questions() QuestionRepository
	Answers() AnswerRepository
	Results() ResultRepository
	// WithTx runs fn against repositories bound to a single transaction.
	// Any error returned by fn rolls the whole transaction back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db          *gorm.DB
	assessments AssessmentRepository
	questions   QuestionRepository
	answers     AnswerRepository
	results     ResultRepository
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:          db,
		assessments: NewAssessmentRepository(db),
		questions:   NewQuestionRepository(db),
		answers:     NewAnswerRepository(db),
		results:     NewResultRepository(db),
	}
}

func (s *gormStore) Assessments() AssessmentRepository { return s.assessments }
func (s *gormStore) Questions() QuestionRepository     { return s.questions }
func (s *gormStore) Answers() AnswerRepository         { return s.answers }
func (s *gormStore) Results() ResultRepository         { return s.results }

func (s *gormStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
