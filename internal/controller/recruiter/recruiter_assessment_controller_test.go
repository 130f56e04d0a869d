package recruiter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lshigami/skillgate/internal/controller/recruiter"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/lshigami/skillgate/internal/service"
)

type mockRecruiterService struct {
	createFn         func(ctx context.Context, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	listFn           func(ctx context.Context, recruiterID uint) ([]dto.AssessmentResponse, error)
	detailsFn        func(ctx context.Context, id, recruiterID uint) (*dto.AssessmentResponse, error)
	listCandidatesFn func(ctx context.Context, id, recruiterID uint) (*dto.AssessmentCandidatesResponse, error)
}

func (m *mockRecruiterService) CreateAssessment(ctx context.Context, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockRecruiterService) ListAssessments(ctx context.Context, recruiterID uint) ([]dto.AssessmentResponse, error) {
	return m.listFn(ctx, recruiterID)
}

func (m *mockRecruiterService) GetAssessmentDetails(ctx context.Context, id, recruiterID uint) (*dto.AssessmentResponse, error) {
	return m.detailsFn(ctx, id, recruiterID)
}

func (m *mockRecruiterService) ListCandidates(ctx context.Context, id, recruiterID uint) (*dto.AssessmentCandidatesResponse, error) {
	return m.listCandidatesFn(ctx, id, recruiterID)
}

var _ = Describe("RecruiterAssessmentController", func() {
	var (
		router *gin.Engine
		svc    *mockRecruiterService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockRecruiterService{}
		recruiter.NewRecruiterAssessmentController(svc).RegisterRoutes(router.Group("/api/v1"))
	})

	serve := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("creates an assessment", func() {
		svc.createFn = func(_ context.Context, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
			Expect(req.RequiredSkills).To(Equal("python, sql"))
			return &dto.AssessmentResponse{ID: 1, Title: req.Title, RequiredSkills: []string{"Python", "SQL"}, Status: "draft"}, nil
		}

		w := serve(http.MethodPost, "/api/v1/recruiter/assessments", map[string]any{
			"title": "Backend", "required_skills": "python, sql", "recruiter_id": 100,
		})
		Expect(w.Code).To(Equal(http.StatusCreated))

		var resp dto.AssessmentResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.RequiredSkills).To(Equal([]string{"Python", "SQL"}))
	})

	It("rejects a threshold above 100 before calling the service", func() {
		w := serve(http.MethodPost, "/api/v1/recruiter/assessments", map[string]any{
			"title": "Backend", "required_skills": "python", "recruiter_id": 100, "threshold_percentage": 120,
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("maps a validation error to 400", func() {
		svc.createFn = func(context.Context, dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
			return nil, fmt.Errorf("%w: no skills", service.ErrValidation)
		}
		w := serve(http.MethodPost, "/api/v1/recruiter/assessments", map[string]any{
			"title": "Backend", "required_skills": " , ", "recruiter_id": 100,
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists assessments for the recruiter", func() {
		svc.listFn = func(_ context.Context, recruiterID uint) ([]dto.AssessmentResponse, error) {
			Expect(recruiterID).To(Equal(uint(100)))
			return []dto.AssessmentResponse{{ID: 1}, {ID: 2}}, nil
		}
		w := serve(http.MethodGet, "/api/v1/recruiter/assessments?recruiter_id=100", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp []dto.AssessmentResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})

	It("requires the recruiter id", func() {
		w := serve(http.MethodGet, "/api/v1/recruiter/assessments", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for another recruiter's assessment", func() {
		svc.detailsFn = func(context.Context, uint, uint) (*dto.AssessmentResponse, error) {
			return nil, fmt.Errorf("assessment 5: %w", repository.ErrNotFound)
		}
		w := serve(http.MethodGet, "/api/v1/recruiter/assessments/5?recruiter_id=101", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("lists candidates with their results", func() {
		svc.listCandidatesFn = func(_ context.Context, id, recruiterID uint) (*dto.AssessmentCandidatesResponse, error) {
			Expect(id).To(Equal(uint(5)))
			Expect(recruiterID).To(Equal(uint(100)))
			return &dto.AssessmentCandidatesResponse{
				Assessment: dto.AssessmentResponse{ID: id},
				Candidates: []dto.CandidateResultResponse{{CandidateID: 7, Status: "completed", Result: dto.ResultResponse{OverallScore: 8}}},
			}, nil
		}
		w := serve(http.MethodGet, "/api/v1/recruiter/assessments/5/candidates?recruiter_id=100", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp dto.AssessmentCandidatesResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Candidates).To(HaveLen(1))
		Expect(resp.Candidates[0].Result.OverallScore).To(Equal(8.0))
	})

	It("rejects a malformed id", func() {
		w := serve(http.MethodGet, "/api/v1/recruiter/assessments/abc?recruiter_id=100", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
