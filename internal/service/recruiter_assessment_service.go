package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/skillgate/config"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	defaultThreshold = 70
	defaultTTL       = 7 * 24 * time.Hour
)

type RecruiterAssessmentService interface {
	CreateAssessment(ctx context.Context, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	ListAssessments(ctx context.Context, recruiterID uint) ([]dto.AssessmentResponse, error)
	// GetAssessmentDetails reports ErrNotFound when the assessment belongs to
	// another recruiter.
	GetAssessmentDetails(ctx context.Context, id, recruiterID uint) (*dto.AssessmentResponse, error)
	// ListCandidates returns the candidates that finished the assessment
	// together with their results.
	ListCandidates(ctx context.Context, id, recruiterID uint) (*dto.AssessmentCandidatesResponse, error)
}

type recruiterAssessmentService struct {
	store repository.Store
	ttl   time.Duration
}

func NewRecruiterAssessmentService(store repository.Store, cfg *config.Config) RecruiterAssessmentService {
	ttl := cfg.Assessment.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &recruiterAssessmentService{store: store, ttl: ttl}
}

func (s *recruiterAssessmentService) CreateAssessment(ctx context.Context, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.RecruiterID == 0 {
		return nil, fmt.Errorf("%w: recruiter_id is required", ErrValidation)
	}
	skills := NormalizeSkills(req.RequiredSkills)
	if len(skills) == 0 {
		return nil, fmt.Errorf("%w: at least one required skill is needed", ErrValidation)
	}
	threshold := defaultThreshold
	if req.ThresholdPercentage != nil {
		threshold = *req.ThresholdPercentage
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: threshold_percentage must be between 0 and 100", ErrValidation)
	}

	expiresAt := time.Now().UTC().Add(s.ttl)
	assessment := model.Assessment{
		Title:               title,
		Description:         strings.TrimSpace(req.Description),
		RecruiterID:         req.RecruiterID,
		RequiredSkills:      skills,
		ThresholdPercentage: threshold,
		Status:              model.StatusDraft,
		ExpiresAt:           &expiresAt,
	}
	if err := s.store.Assessments().Create(ctx, &assessment); err != nil {
		log.Error().Err(err).Uint("recruiterID", req.RecruiterID).Msg("Failed to create assessment")
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	log.Info().Uint("assessmentID", assessment.ID).Strs("skills", skills).Int("threshold", threshold).Msg("Assessment created")
	resp := toAssessmentResponse(&assessment)
	return &resp, nil
}

func (s *recruiterAssessmentService) ListAssessments(ctx context.Context, recruiterID uint) ([]dto.AssessmentResponse, error) {
	if recruiterID == 0 {
		return nil, fmt.Errorf("%w: recruiter_id is required", ErrValidation)
	}
	assessments, err := s.store.Assessments().FindAllByRecruiter(ctx, recruiterID)
	if err != nil {
		log.Error().Err(err).Uint("recruiterID", recruiterID).Msg("Failed to list assessments")
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	now := time.Now().UTC()
	resp := make([]dto.AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		a := &assessments[i]
		if expiryPending(a, now) {
			current, err := persistExpiry(ctx, s.store, a.ID, now)
			if err != nil {
				log.Warn().Err(err).Uint("assessmentID", a.ID).Msg("Failed to persist assessment expiry while listing")
			} else {
				a = current
			}
		}
		resp = append(resp, toAssessmentResponse(a))
	}
	return resp, nil
}

func (s *recruiterAssessmentService) loadOwned(ctx context.Context, id, recruiterID uint) (*model.Assessment, error) {
	a, err := loadAssessment(ctx, s.store, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if a.RecruiterID != recruiterID {
		log.Warn().Uint("assessmentID", id).Uint("recruiterID", recruiterID).Msg("Recruiter requested an assessment they do not own")
		return nil, fmt.Errorf("assessment %d: %w", id, repository.ErrNotFound)
	}
	return a, nil
}

func (s *recruiterAssessmentService) GetAssessmentDetails(ctx context.Context, id, recruiterID uint) (*dto.AssessmentResponse, error) {
	a, err := s.loadOwned(ctx, id, recruiterID)
	if err != nil {
		return nil, err
	}

	resp := toAssessmentResponse(a)

	answers, err := s.store.Answers().FindByAssessmentIDWithQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for assessment %d: %w", id, err)
	}
	for _, answer := range answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(answer))
	}

	result, err := s.store.Results().FindByAssessmentID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to load result for assessment %d: %w", id, err)
	default:
		resp.Result = toResultResponse(result)
	}
	return &resp, nil
}

func (s *recruiterAssessmentService) ListCandidates(ctx context.Context, id, recruiterID uint) (*dto.AssessmentCandidatesResponse, error) {
	a, err := s.loadOwned(ctx, id, recruiterID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AssessmentCandidatesResponse{
		Assessment: toAssessmentResponse(a),
		Candidates: []dto.CandidateResultResponse{},
	}
	if a.CandidateID == nil {
		return resp, nil
	}

	result, err := s.store.Results().FindByAssessmentID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result for assessment %d: %w", id, err)
	}
	resp.Candidates = append(resp.Candidates, dto.CandidateResultResponse{
		CandidateID: *a.CandidateID,
		Status:      string(a.Status),
		CompletedAt: a.CompletedAt,
		Result:      *toResultResponse(result),
	})
	return resp, nil
}
