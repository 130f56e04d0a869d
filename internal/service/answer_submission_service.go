package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/rs/zerolog/log"
)

type AnswerSubmissionService interface {
	// SubmitAnswer grades and stores the single answer to a question.
	SubmitAnswer(ctx context.Context, questionID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	// CompleteAssessment aggregates the graded answers into the final result.
	CompleteAssessment(ctx context.Context, assessmentID uint, req dto.CompleteAssessmentRequest) (*dto.ResultResponse, error)
}

type answerSubmissionService struct {
	store   repository.Store
	grading GradingService
}

func NewAnswerSubmissionService(store repository.Store, grading GradingService) AnswerSubmissionService {
	return &answerSubmissionService{store: store, grading: grading}
}

func (s *answerSubmissionService) SubmitAnswer(ctx context.Context, questionID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	if req.CandidateID == 0 {
		return nil, fmt.Errorf("%w: candidate_id is required", ErrValidation)
	}
	answerText := strings.TrimSpace(req.AnswerText)
	if answerText == "" {
		return nil, fmt.Errorf("%w: answer text is required", ErrValidation)
	}
	if req.TimeSpentSeconds != nil && *req.TimeSpentSeconds < 0 {
		return nil, fmt.Errorf("%w: time_spent_seconds cannot be negative", ErrValidation)
	}

	question, err := s.store.Questions().FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", questionID, err)
	}
	a, err := loadAssessment(ctx, s.store, question.AssessmentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := requireStatus(a, model.StatusActive, "answer"); err != nil {
		return nil, err
	}
	if err := requireCandidate(a, req.CandidateID); err != nil {
		return nil, err
	}

	exists, err := s.store.Answers().ExistsForQuestion(ctx, a.ID, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing answer: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: question %d", ErrDuplicateAnswer, question.ID)
	}

	grade := s.grading.Grade(ctx, question.Skill, question.Text, answerText)
	answer := model.Answer{
		AssessmentID:     a.ID,
		QuestionID:       question.ID,
		AnswerText:       answerText,
		AIScore:          &grade.Score,
		AIFeedback:       grade.Feedback,
		GradingDegraded:  grade.Degraded,
		TimeSpentSeconds: req.TimeSpentSeconds,
	}
	if err := s.store.Answers().Create(ctx, &answer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost the race against a concurrent submission
			return nil, fmt.Errorf("%w: question %d", ErrDuplicateAnswer, question.ID)
		}
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to store answer")
		return nil, fmt.Errorf("failed to store answer: %w", err)
	}

	log.Info().
		Uint("assessmentID", a.ID).
		Uint("questionID", question.ID).
		Float64("score", grade.Score).
		Bool("degraded", grade.Degraded).
		Msg("Answer graded")

	answer.Question = *question
	resp := toAnswerResponse(answer)
	return &resp, nil
}

func (s *answerSubmissionService) CompleteAssessment(ctx context.Context, assessmentID uint, req dto.CompleteAssessmentRequest) (*dto.ResultResponse, error) {
	if req.CandidateID == 0 {
		return nil, fmt.Errorf("%w: candidate_id is required", ErrValidation)
	}
	now := time.Now().UTC()
	a, err := loadAssessment(ctx, s.store, assessmentID, now)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(a, model.StatusActive, "complete"); err != nil {
		return nil, err
	}
	if err := requireCandidate(a, req.CandidateID); err != nil {
		return nil, err
	}

	questionCount, err := s.store.Questions().CountByAssessmentID(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	answers, err := s.store.Answers().FindByAssessmentIDWithQuestions(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	if err := Finalize(a, questionCount, int64(len(answers)), now); err != nil {
		return nil, err
	}

	summary, err := Aggregate(GradedAnswersFrom(answers))
	if err != nil {
		return nil, fmt.Errorf("assessment %d: %w", a.ID, err)
	}
	recommendations := s.grading.Recommend(ctx, summary)
	result := BuildResult(a.ID, summary, recommendations)

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		current, err := tx.Assessments().FindByIDForUpdate(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := requireStatus(current, model.StatusActive, "complete"); err != nil {
			return err
		}
		if err := tx.Assessments().Update(ctx, a); err != nil {
			return fmt.Errorf("failed to complete assessment: %w", err)
		}
		if err := tx.Results().Create(ctx, &result); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fmt.Errorf("%w: assessment %d already has a result", ErrInvalidStateTransition, a.ID)
			}
			return fmt.Errorf("failed to store result: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", a.ID).Msg("CompleteAssessment: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("assessmentID", a.ID).
		Float64("overallScore", summary.OverallScore).
		Bool("passed", summary.IsPassed).
		Int("degradedAnswers", summary.DegradedAnswers).
		Msg("Assessment completed")
	return toResultResponse(&result), nil
}
