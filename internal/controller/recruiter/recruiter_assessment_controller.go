package recruiter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/skillgate/internal/controller"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/service"
	"github.com/rs/zerolog/log"
)

type RecruiterAssessmentController struct {
	assessmentService service.RecruiterAssessmentService
}

func NewRecruiterAssessmentController(s service.RecruiterAssessmentService) *RecruiterAssessmentController {
	return &RecruiterAssessmentController{assessmentService: s}
}

func (c *RecruiterAssessmentController) RegisterRoutes(api *gin.RouterGroup) {
	assessments := api.Group("/recruiter/assessments")
	assessments.POST("", c.CreateAssessment)
	assessments.GET("", c.ListAssessments)
	assessments.GET("/:id", c.GetAssessmentDetails)
	assessments.GET("/:id/candidates", c.ListCandidates)
}

// CreateAssessment godoc
// @Summary (Recruiter) Create an assessment
// @Description Normalizes the comma-separated skill list and creates a draft assessment that expires after the configured TTL.
// @Tags Recruiter - Assessments
// @Accept json
// @Produce json
// @Param assessment_data body dto.CreateAssessmentRequest true "Assessment to create"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruiter/assessments [post]
func (c *RecruiterAssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.assessmentService.CreateAssessment(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to create assessment")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAssessments godoc
// @Summary (Recruiter) List assessments
// @Tags Recruiter - Assessments
// @Produce json
// @Param recruiter_id query int true "Recruiter ID"
// @Success 200 {array} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid recruiter ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruiter/assessments [get]
func (c *RecruiterAssessmentController) ListAssessments(ctx *gin.Context) {
	recruiterID, ok := controller.ParseIDQuery(ctx, "recruiter_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.ListAssessments(ctx.Request.Context(), recruiterID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to list assessments")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAssessmentDetails godoc
// @Summary (Recruiter) Get assessment details
// @Description Returns the assessment with its eligibility report, graded answers and final result when available.
// @Tags Recruiter - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Param recruiter_id query int true "Recruiter ID"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruiter/assessments/{id} [get]
func (c *RecruiterAssessmentController) GetAssessmentDetails(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	recruiterID, ok := controller.ParseIDQuery(ctx, "recruiter_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.GetAssessmentDetails(ctx.Request.Context(), id, recruiterID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to get assessment")
		return
	}
	log.Debug().Uint("assessmentID", id).Msg("Recruiter assessment details served")
	ctx.JSON(http.StatusOK, resp)
}

// ListCandidates godoc
// @Summary (Recruiter) List candidates with results
// @Description Returns the assessment and every candidate that completed it, with the graded result.
// @Tags Recruiter - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Param recruiter_id query int true "Recruiter ID"
// @Success 200 {object} dto.AssessmentCandidatesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruiter/assessments/{id}/candidates [get]
func (c *RecruiterAssessmentController) ListCandidates(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	recruiterID, ok := controller.ParseIDQuery(ctx, "recruiter_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.ListCandidates(ctx.Request.Context(), id, recruiterID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to list candidates")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
