package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/controller"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/middleware"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminExamController struct {
	adminExamService service.AdminExamService
}

func NewAdminExamController(adminExamService service.AdminExamService) *AdminExamController {
	return &AdminExamController{adminExamService: adminExamService}
}

// CreateExam godoc
// @Summary (Admin) Create a new exam
// @Description Admin creates an exam with its questions. Every question needs 4 options and a correct option index in [0, 4). New exams are active.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_data body dto.ExamCreateDTO true "Exam creation data including all questions"
// @Success 201 {object} dto.AdminExamDTO "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateExam: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	adminID, _ := middleware.Identity(ctx)
	exam, err := c.adminExamService.CreateExam(ctx.Request.Context(), req, adminID)
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// ListExams godoc
// @Summary (Admin) List all exams
// @Description All exams, active or not, newest first. Questions are not included.
// @Tags Admin - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminExamDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [get]
func (c *AdminExamController) ListExams(ctx *gin.Context) {
	exams, err := c.adminExamService.ListExams(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// SetExamActive godoc
// @Summary (Admin) Set whether an exam is open to students
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param status body dto.ExamActiveDTO true "New status"
// @Success 200 {object} dto.AdminExamDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID or body"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams/{exam_id}/active [patch]
func (c *AdminExamController) SetExamActive(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamActiveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	exam, err := c.adminExamService.SetExamActive(ctx.Request.Context(), examID, *req.IsActive)
	if err != nil {
		controller.RespondError(ctx, examID, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// ToggleExam godoc
// @Summary (Admin) Flip the active flag of an exam
// @Tags Admin - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.AdminExamDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id}/toggle [post]
func (c *AdminExamController) ToggleExam(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.adminExamService.ToggleExam(ctx.Request.Context(), examID)
	if err != nil {
		controller.RespondError(ctx, examID, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}
