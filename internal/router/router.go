package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	adminctrl "github.com/mekalanagasita-alt/Online-Examination-System/internal/controller/admin"
	userctrl "github.com/mekalanagasita-alt/Online-Examination-System/internal/controller/user"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/middleware"
)

// Controllers groups the handlers mounted by Register.
type Controllers struct {
	AdminExam   *adminctrl.AdminExamController
	AdminResult *adminctrl.AdminResultController
	UserExam    *userctrl.UserExamController
}

// Register mounts the API under /api/v1. Everything except /healthz needs a
// bearer token; /api/v1/admin also needs the admin role.
func Register(router *gin.Engine, jwtSecret string, ctrl Controllers) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1", middleware.Auth(jwtSecret))

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := api.Group("/admin", middleware.RequireRole(middleware.RoleAdmin))
	{
		exams := adminAPIGroup.Group("/exams")
		exams.POST("", ctrl.AdminExam.CreateExam)
		exams.GET("", ctrl.AdminExam.ListExams)
		exams.PATCH("/:exam_id/active", ctrl.AdminExam.SetExamActive)
		exams.POST("/:exam_id/toggle", ctrl.AdminExam.ToggleExam)

		adminAPIGroup.GET("/results", ctrl.AdminResult.ListResults)
		adminAPIGroup.GET("/results/export", ctrl.AdminResult.ExportResults)
		adminAPIGroup.GET("/dashboard", ctrl.AdminResult.Dashboard)
	}

	// Student Routes (prefixed with /api/v1)
	userAPIGroup := api.Group("", middleware.RequireRole(middleware.RoleStudent))
	{
		userAPIGroup.GET("/exams", ctrl.UserExam.ListExams)
		userAPIGroup.GET("/exams/:exam_id", ctrl.UserExam.GetExam)
		userAPIGroup.POST("/exams/:exam_id/attempts", ctrl.UserExam.SubmitAttempt)
		userAPIGroup.GET("/exams/:exam_id/result", ctrl.UserExam.GetResult)
		userAPIGroup.GET("/dashboard", ctrl.UserExam.Dashboard)
	}
}
