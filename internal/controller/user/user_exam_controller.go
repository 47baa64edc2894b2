package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/controller"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/middleware"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/service"
	"github.com/rs/zerolog/log"
)

type UserExamController struct {
	userExamService   service.UserExamService
	submissionService service.SubmissionService
	reportService     service.ReportService
}

func NewUserExamController(
	userExamService service.UserExamService,
	submissionService service.SubmissionService,
	reportService service.ReportService,
) *UserExamController {
	return &UserExamController{
		userExamService:   userExamService,
		submissionService: submissionService,
		reportService:     reportService,
	}
}

// ListExams godoc
// @Summary Get active exams
// @Description Exams open to students, newest first, each flagged when the caller already took it.
// @Tags User - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *UserExamController) ListExams(ctx *gin.Context) {
	studentID, _ := middleware.Identity(ctx)
	exams, err := c.userExamService.ListActiveExams(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get an exam for taking
// @Description Questions and options without the answer key. A student who already took the exam gets 409 with the result location.
// @Tags User - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamTakeDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 403 {object} dto.ErrorResponse "Exam is not active"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.AttemptConflictResponse "Already taken"
// @Router /exams/{exam_id} [get]
func (c *UserExamController) GetExam(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	studentID, _ := middleware.Identity(ctx)
	exam, err := c.userExamService.GetExamForTaking(ctx.Request.Context(), studentID, examID)
	if err != nil {
		controller.RespondError(ctx, examID, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitAttempt godoc
// @Summary Submit answers for an exam
// @Description Answers are addressed by question position; null or a missing position means unanswered. Each exam can be taken once.
// @Tags User - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param attempt_data body dto.AttemptSubmitDTO true "Answers and elapsed time"
// @Success 201 {object} dto.ResultDTO "Graded result"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID or body"
// @Failure 403 {object} dto.ErrorResponse "Exam is not active"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.AttemptConflictResponse "Already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{exam_id}/attempts [post]
func (c *UserExamController) SubmitAttempt(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("SubmitAttempt: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	studentID, _ := middleware.Identity(ctx)
	result, err := c.submissionService.SubmitAttempt(ctx.Request.Context(), studentID, examID,
		service.NormalizeAnswers(req.Answers), req.TimeTakenSeconds)
	if err != nil {
		controller.RespondError(ctx, examID, err)
		return
	}
	ctx.Header("Location", controller.ResultURL(examID))
	ctx.JSON(http.StatusCreated, result)
}

// GetResult godoc
// @Summary Review my result for an exam
// @Description The stored result with a per-question breakdown.
// @Tags User - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /exams/{exam_id}/result [get]
func (c *UserExamController) GetResult(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	studentID, _ := middleware.Identity(ctx)
	detail, err := c.submissionService.GetResultForReview(ctx.Request.Context(), studentID, examID)
	if err != nil {
		controller.RespondError(ctx, examID, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// Dashboard godoc
// @Summary Student dashboard
// @Description Active exams and the 5 most recent results of the caller.
// @Tags User - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentDashboardDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *UserExamController) Dashboard(ctx *gin.Context) {
	studentID, _ := middleware.Identity(ctx)
	dashboard, err := c.reportService.StudentDashboard(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
