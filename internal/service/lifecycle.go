package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/rs/zerolog/log"
)

var transitions = map[model.AssessmentStatus][]model.AssessmentStatus{
	model.StatusDraft:     {model.StatusActive, model.StatusRejected, model.StatusExpired},
	model.StatusActive:    {model.StatusCompleted, model.StatusExpired},
	model.StatusCompleted: {},
	model.StatusRejected:  {},
	model.StatusExpired:   {},
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
func CanTransition(from, to model.AssessmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further lifecycle transitions are possible.
func IsTerminal(status model.AssessmentStatus) bool {
	return len(transitions[status]) == 0
}

func transition(a *model.Assessment, to model.AssessmentStatus) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: assessment %d cannot move from %s to %s", ErrInvalidStateTransition, a.ID, a.Status, to)
	}
	a.Status = to
	return nil
}

func requireStatus(a *model.Assessment, want model.AssessmentStatus, action string) error {
	if a.Status != want {
		return fmt.Errorf("%w: cannot %s assessment %d in status %s", ErrInvalidStateTransition, action, a.ID, a.Status)
	}
	return nil
}

// AssignCandidate binds the candidate after a successful eligibility check and
// activates the assessment.
func AssignCandidate(a *model.Assessment, candidateID uint, now time.Time) error {
	if err := requireStatus(a, model.StatusDraft, "start"); err != nil {
		return err
	}
	if !a.Eligibility.Data().Eligible {
		return fmt.Errorf("%w: assessment %d has no successful eligibility check", ErrInvalidStateTransition, a.ID)
	}
	if err := transition(a, model.StatusActive); err != nil {
		return err
	}
	a.CandidateID = &candidateID
	a.StartedAt = &now
	return nil
}

// Reject closes a draft assessment whose candidate failed the eligibility check.
func Reject(a *model.Assessment) error {
	return transition(a, model.StatusRejected)
}

// Finalize completes an active assessment once every question has exactly one answer.
func Finalize(a *model.Assessment, questionCount, answerCount int64, now time.Time) error {
	if err := requireStatus(a, model.StatusActive, "complete"); err != nil {
		return err
	}
	if answerCount != questionCount {
		return fmt.Errorf("%w: please answer all questions, %d/%d completed", ErrInvalidStateTransition, answerCount, questionCount)
	}
	if err := transition(a, model.StatusCompleted); err != nil {
		return err
	}
	a.CompletedAt = &now
	return nil
}

// Expire marks an overdue draft or active assessment as expired. It returns
// false when nothing changed.
func Expire(a *model.Assessment, now time.Time) bool {
	if !a.IsExpired(now) || !CanTransition(a.Status, model.StatusExpired) {
		return false
	}
	a.Status = model.StatusExpired
	return true
}

func requireCandidate(a *model.Assessment, candidateID uint) error {
	if a.CandidateID == nil || *a.CandidateID != candidateID {
		return fmt.Errorf("%w: candidate %d is not assigned to assessment %d", ErrForbidden, candidateID, a.ID)
	}
	return nil
}

// loadAssessment fetches an assessment and persists a pending expiry before
// returning it, so callers always see the effective status.
func loadAssessment(ctx context.Context, store repository.Store, id uint, now time.Time) (*model.Assessment, error) {
	a, err := store.Assessments().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assessment %d: %w", id, err)
	}
	if !expiryPending(a, now) {
		return a, nil
	}
	return persistExpiry(ctx, store, id, now)
}

func expiryPending(a *model.Assessment, now time.Time) bool {
	return a.IsExpired(now) && CanTransition(a.Status, model.StatusExpired)
}

// persistExpiry expires the locked row if it is still eligible for expiry and
// returns the stored assessment. A row that moved on after the caller read it
// is returned unchanged.
func persistExpiry(ctx context.Context, store repository.Store, id uint, now time.Time) (*model.Assessment, error) {
	var current *model.Assessment
	err := store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		current, err = tx.Assessments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("assessment %d: %w", id, err)
		}
		if !Expire(current, now) {
			return nil
		}
		if err := tx.Assessments().Update(ctx, current); err != nil {
			return fmt.Errorf("failed to expire assessment %d: %w", id, err)
		}
		log.Info().Uint("assessmentID", id).Msg("Assessment expired")
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("Failed to persist assessment expiry")
		return nil, err
	}
	return current, nil
}
