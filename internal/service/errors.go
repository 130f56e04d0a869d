package service

import "errors"

var (
	// ErrValidation marks missing or blank required input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidStateTransition marks a call that the assessment lifecycle does not allow.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrDuplicateAnswer marks a second submission for an already answered question.
	ErrDuplicateAnswer = errors.New("question already answered")
	// ErrNoAnswers marks an attempt to aggregate an empty answer set.
	ErrNoAnswers = errors.New("no answers found for this assessment")
	// ErrForbidden marks a caller that is not the candidate assigned to the assessment.
	ErrForbidden = errors.New("access denied")
)
