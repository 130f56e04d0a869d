package candidate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/skillgate/internal/controller"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/service"
)

type CandidateAssessmentController struct {
	assessmentService service.CandidateAssessmentService
	submissionService service.AnswerSubmissionService
}

func NewCandidateAssessmentController(as service.CandidateAssessmentService, ss service.AnswerSubmissionService) *CandidateAssessmentController {
	return &CandidateAssessmentController{
		assessmentService: as,
		submissionService: ss,
	}
}

func (c *CandidateAssessmentController) RegisterRoutes(api *gin.RouterGroup) {
	assessments := api.Group("/assessments")
	assessments.GET("/:id/public", c.GetPublicAssessment)
	assessments.POST("/:id/start", c.StartAssessment)
	assessments.GET("/:id/progress", c.GetProgress)
	assessments.GET("/:id/questions", c.ListQuestions)
	assessments.POST("/:id/complete", c.CompleteAssessment)

	api.POST("/questions/:question_id/answer", c.SubmitAnswer)
}

// GetPublicAssessment godoc
// @Summary (Candidate) View an assessment before starting
// @Tags Candidate - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.PublicAssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{id}/public [get]
func (c *CandidateAssessmentController) GetPublicAssessment(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.GetPublicAssessment(ctx.Request.Context(), id)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to get assessment")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartAssessment godoc
// @Summary (Candidate) Submit a resume and start the assessment
// @Description Checks the resume against the required skills. Eligible candidates get a generated question set; ineligible ones get the assessment rejected.
// @Tags Candidate - Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param start_data body dto.StartAssessmentRequest true "Candidate ID and resume text"
// @Success 200 {object} dto.StartAssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment cannot be started"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/start [post]
func (c *CandidateAssessmentController) StartAssessment(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.StartAssessmentRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.assessmentService.StartAssessment(ctx.Request.Context(), id, req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to start assessment")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetProgress godoc
// @Summary (Candidate) Get assessment progress
// @Tags Candidate - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Param candidate_id query int true "Candidate ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the assigned candidate"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{id}/progress [get]
func (c *CandidateAssessmentController) GetProgress(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	candidateID, ok := controller.ParseIDQuery(ctx, "candidate_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.GetProgress(ctx.Request.Context(), id, candidateID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to get progress")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListQuestions godoc
// @Summary (Candidate) List assessment questions
// @Tags Candidate - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Param candidate_id query int true "Candidate ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the assigned candidate"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{id}/questions [get]
func (c *CandidateAssessmentController) ListQuestions(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	candidateID, ok := controller.ParseIDQuery(ctx, "candidate_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.ListQuestions(ctx.Request.Context(), id, candidateID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to list questions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary (Candidate) Answer a question
// @Description Grades the answer immediately. Each question accepts exactly one answer.
// @Tags Candidate - Answers
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param answer_data body dto.SubmitAnswerRequest true "Answer"
// @Success 201 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the assigned candidate"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Already answered or assessment not active"
// @Router /questions/{question_id}/answer [post]
func (c *CandidateAssessmentController) SubmitAnswer(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), questionID, req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CompleteAssessment godoc
// @Summary (Candidate) Complete the assessment
// @Description Aggregates the graded answers into the final result. Every question must be answered.
// @Tags Candidate - Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param complete_data body dto.CompleteAssessmentRequest true "Candidate ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the assigned candidate"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Unanswered questions or assessment not active"
// @Failure 422 {object} dto.ErrorResponse "No answers"
// @Router /assessments/{id}/complete [post]
func (c *CandidateAssessmentController) CompleteAssessment(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CompleteAssessmentRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.submissionService.CompleteAssessment(ctx.Request.Context(), id, req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to complete assessment")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
