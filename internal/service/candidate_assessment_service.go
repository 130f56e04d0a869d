package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/skillgate/config"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type CandidateAssessmentService interface {
	GetPublicAssessment(ctx context.Context, id uint) (*dto.PublicAssessmentResponse, error)
	// StartAssessment runs the eligibility check. An eligible candidate gets
	// the assessment activated with its question set; an ineligible one gets
	// it rejected. Both outcomes are successful calls.
	StartAssessment(ctx context.Context, id uint, req dto.StartAssessmentRequest) (*dto.StartAssessmentResponse, error)
	GetProgress(ctx context.Context, id, candidateID uint) (*dto.ProgressResponse, error)
	ListQuestions(ctx context.Context, id, candidateID uint) ([]dto.QuestionResponse, error)
}

type candidateAssessmentService struct {
	store             repository.Store
	questionSets      QuestionSetService
	questionsPerSkill int
}

func NewCandidateAssessmentService(store repository.Store, questionSets QuestionSetService, cfg *config.Config) CandidateAssessmentService {
	perSkill := cfg.Assessment.QuestionsPerSkill
	if perSkill <= 0 {
		perSkill = 3
	}
	return &candidateAssessmentService{
		store:             store,
		questionSets:      questionSets,
		questionsPerSkill: perSkill,
	}
}

func (s *candidateAssessmentService) GetPublicAssessment(ctx context.Context, id uint) (*dto.PublicAssessmentResponse, error) {
	a, err := loadAssessment(ctx, s.store, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	resp := toPublicResponse(a)
	return &resp, nil
}

func (s *candidateAssessmentService) StartAssessment(ctx context.Context, id uint, req dto.StartAssessmentRequest) (*dto.StartAssessmentResponse, error) {
	if req.CandidateID == 0 {
		return nil, fmt.Errorf("%w: candidate_id is required", ErrValidation)
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, fmt.Errorf("%w: resume text is empty", ErrValidation)
	}

	a, err := loadAssessment(ctx, s.store, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := requireStatus(a, model.StatusDraft, "start"); err != nil {
		return nil, err
	}

	skills := []string(a.RequiredSkills)
	matches := MatchResume(req.ResumeText, skills)
	report := Eligibility(matches, a.ThresholdPercentage)

	a.ResumeText = req.ResumeText
	a.ResumeFilename = req.ResumeFilename
	a.SkillMatches = datatypes.NewJSONType(matches)
	a.Eligibility = datatypes.NewJSONType(report)

	log.Info().
		Uint("assessmentID", a.ID).
		Uint("candidateID", req.CandidateID).
		Float64("matchPercent", report.MatchPercent).
		Bool("eligible", report.Eligible).
		Msg("Eligibility checked")

	if !report.Eligible {
		rejected, err := s.reject(ctx, a)
		if err != nil {
			return nil, err
		}
		return &dto.StartAssessmentResponse{
			AssessmentID: rejected.ID,
			Status:       string(rejected.Status),
			Eligible:     false,
			Eligibility:  report,
			Message: fmt.Sprintf("Only %.2f%% of the required skills were found in the resume, %d%% is needed.",
				report.MatchPercent, a.ThresholdPercentage),
		}, nil
	}

	// Generation is slow and talks to an external service, so it runs
	// before the transaction opens.
	questions := s.questionSets.Build(ctx, a.ID, skills, s.questionsPerSkill)
	now := time.Now().UTC()

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		current, err := tx.Assessments().FindByIDForUpdate(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := requireStatus(current, model.StatusDraft, "start"); err != nil {
			return err
		}
		if err := AssignCandidate(a, req.CandidateID, now); err != nil {
			return err
		}
		if err := tx.Assessments().Update(ctx, a); err != nil {
			return fmt.Errorf("failed to activate assessment: %w", err)
		}
		if err := tx.Questions().CreateBatch(ctx, questions); err != nil {
			return fmt.Errorf("failed to store questions: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", a.ID).Msg("StartAssessment: transaction failed")
		return nil, err
	}

	log.Info().Uint("assessmentID", a.ID).Int("questions", len(questions)).Msg("Assessment started")
	return &dto.StartAssessmentResponse{
		AssessmentID:  a.ID,
		Status:        string(a.Status),
		Eligible:      true,
		Eligibility:   report,
		QuestionCount: len(questions),
		Message:       "You are eligible for this assessment.",
	}, nil
}

// reject stores the eligibility outcome on the locked row. A start that
// committed after a was read wins, and the rejection fails.
func (s *candidateAssessmentService) reject(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	var current *model.Assessment
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		current, err = tx.Assessments().FindByIDForUpdate(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := requireStatus(current, model.StatusDraft, "reject"); err != nil {
			return err
		}
		current.ResumeText = a.ResumeText
		current.ResumeFilename = a.ResumeFilename
		current.SkillMatches = a.SkillMatches
		current.Eligibility = a.Eligibility
		if err := Reject(current); err != nil {
			return err
		}
		if err := tx.Assessments().Update(ctx, current); err != nil {
			return fmt.Errorf("failed to reject assessment: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", a.ID).Msg("Failed to persist rejected assessment")
		return nil, err
	}
	log.Info().Uint("assessmentID", a.ID).Msg("Candidate not eligible, assessment rejected")
	return current, nil
}

func (s *candidateAssessmentService) GetProgress(ctx context.Context, id, candidateID uint) (*dto.ProgressResponse, error) {
	a, err := loadAssessment(ctx, s.store, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := requireCandidate(a, candidateID); err != nil {
		return nil, err
	}

	questions, err := s.store.Questions().FindByAssessmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for assessment %d: %w", id, err)
	}
	answers, err := s.store.Answers().FindByAssessmentIDWithQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for assessment %d: %w", id, err)
	}

	answered := make(map[uint]struct{}, len(answers))
	for _, answer := range answers {
		answered[answer.QuestionID] = struct{}{}
	}

	resp := &dto.ProgressResponse{
		AssessmentID:      a.ID,
		Status:            string(a.Status),
		TotalQuestions:    len(questions),
		AnsweredQuestions: len(answers),
	}
	if len(questions) > 0 {
		resp.ProgressPercentage = roundTo(float64(len(answers))/float64(len(questions))*100, 1)
	}
	// questions arrive ordered by order index
	for _, q := range questions {
		if _, ok := answered[q.ID]; !ok {
			current := toQuestionResponse(q)
			resp.CurrentQuestion = &current
			break
		}
	}
	return resp, nil
}

func (s *candidateAssessmentService) ListQuestions(ctx context.Context, id, candidateID uint) ([]dto.QuestionResponse, error) {
	a, err := loadAssessment(ctx, s.store, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := requireCandidate(a, candidateID); err != nil {
		return nil, err
	}
	questions, err := s.store.Questions().FindByAssessmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for assessment %d: %w", id, err)
	}
	return toQuestionResponses(questions), nil
}
