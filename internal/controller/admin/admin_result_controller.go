package admin

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/controller"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/service"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminResultController struct {
	reportService service.ReportService
}

func NewAdminResultController(reportService service.ReportService) *AdminResultController {
	return &AdminResultController{reportService: reportService}
}

// ListResults godoc
// @Summary (Admin) List all results
// @Description Every stored result with its exam title, most recently completed first.
// @Tags Admin - Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results [get]
func (c *AdminResultController) ListResults(ctx *gin.Context) {
	results, err := c.reportService.ListAllResults(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// ExportResults godoc
// @Summary (Admin) Download all results as a spreadsheet
// @Tags Admin - Results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "XLSX workbook"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/export [get]
func (c *AdminResultController) ExportResults(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.reportService.ExportResults(ctx.Request.Context(), &buf); err != nil {
		log.Error().Err(err).Msg("Admin ExportResults: export failed")
		controller.RespondError(ctx, 0, err)
		return
	}
	filename := fmt.Sprintf("results-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Dashboard godoc
// @Summary (Admin) Dashboard statistics
// @Description Exam, result and student counts plus the 5 most recent exams.
// @Tags Admin - Results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminDashboardDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard [get]
func (c *AdminResultController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.reportService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, 0, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
