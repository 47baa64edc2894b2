package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mekalanagasita-alt/Online-Examination-System/config"
	"github.com/mekalanagasita-alt/Online-Examination-System/database"
	adminctrl "github.com/mekalanagasita-alt/Online-Examination-System/internal/controller/admin"
	userctrl "github.com/mekalanagasita-alt/Online-Examination-System/internal/controller/user"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/middleware"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/service"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.Database{
		Driver: database.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	examRepo := repository.NewExamRepository(db)
	resultRepo := repository.NewResultRepository(db)
	userExams := service.NewUserExamService(examRepo, resultRepo)
	reports := service.NewReportService(examRepo, resultRepo, userExams)
	submissions := service.NewSubmissionService(examRepo, resultRepo, service.NewScoringService(), db)

	r := gin.New()
	Register(r, testSecret, Controllers{
		AdminExam:   adminctrl.NewAdminExamController(service.NewAdminExamService(examRepo)),
		AdminResult: adminctrl.NewAdminResultController(reports),
		UserExam:    userctrl.NewUserExamController(userExams, submissions, reports),
	})
	return r
}

func token(t *testing.T, user, role string) string {
	t.Helper()
	tok, err := middleware.IssueToken(testSecret, user, role, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return tok
}

func do(t *testing.T, r *gin.Engine, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

var sampleExam = map[string]interface{}{
	"title":            "Go Basics",
	"duration_minutes": 20,
	"questions": []map[string]interface{}{
		{"text": "Zero value of int?", "options": []string{"0", "1", "nil", "undefined"}, "correct_option_index": 0},
		{"text": "Keyword for goroutines?", "options": []string{"async", "go", "spawn", "thread"}, "correct_option_index": 1},
		{"text": "Map lookup second value?", "options": []string{"len", "error", "ok", "cap"}, "correct_option_index": 2},
	},
}

func createExam(t *testing.T, r *gin.Engine, admin string) dto.AdminExamDTO {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/admin/exams", admin, sampleExam)
	if w.Code != http.StatusCreated {
		t.Fatalf("create exam status = %d: %s", w.Code, w.Body.String())
	}
	var exam dto.AdminExamDTO
	decode(t, w, &exam)
	return exam
}

func TestHealthz(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAccessControl(t *testing.T) {
	r := newTestRouter(t)
	student := token(t, "student-1", middleware.RoleStudent)
	admin := token(t, "admin-1", middleware.RoleAdmin)

	tests := []struct {
		name   string
		method string
		path   string
		tok    string
		want   int
	}{
		{"anonymous student route", http.MethodGet, "/api/v1/exams", "", http.StatusUnauthorized},
		{"anonymous admin route", http.MethodGet, "/api/v1/admin/exams", "", http.StatusUnauthorized},
		{"student on admin route", http.MethodGet, "/api/v1/admin/results", student, http.StatusForbidden},
		{"admin on student route", http.MethodGet, "/api/v1/exams", admin, http.StatusForbidden},
		{"student listing", http.MethodGet, "/api/v1/exams", student, http.StatusOK},
		{"admin listing", http.MethodGet, "/api/v1/admin/exams", admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, r, tt.method, tt.path, tt.tok, nil); w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCreateExamRejectsInvalidInput(t *testing.T) {
	r := newTestRouter(t)
	admin := token(t, "admin-1", middleware.RoleAdmin)

	bad := map[string]interface{}{
		"title":            "Bad",
		"duration_minutes": 5,
		"questions": []map[string]interface{}{
			{"text": "Q", "options": []string{"a", "b", "c", "d"}, "correct_option_index": 4},
		},
	}
	w := do(t, r, http.MethodPost, "/api/v1/admin/exams", admin, bad)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range key status = %d, want 400", w.Code)
	}
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	if len(resp.Details) == 0 {
		t.Fatal("no details in validation response")
	}

	bad["questions"] = []map[string]interface{}{}
	if w := do(t, r, http.MethodPost, "/api/v1/admin/exams", admin, bad); w.Code != http.StatusBadRequest {
		t.Fatalf("empty questions status = %d, want 400", w.Code)
	}
}

func TestSubmissionFlow(t *testing.T) {
	r := newTestRouter(t)
	admin := token(t, "admin-1", middleware.RoleAdmin)
	student := token(t, "student-1", middleware.RoleStudent)
	exam := createExam(t, r, admin)
	examPath := fmt.Sprintf("/api/v1/exams/%d", exam.ID)

	w := do(t, r, http.MethodGet, examPath, student, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get exam status = %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "correct_option_index") {
		t.Fatalf("answer key leaked: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, examPath+"/attempts", student, map[string]interface{}{
		"answers":            []interface{}{0, nil},
		"time_taken_seconds": 61,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body.String())
	}
	var result dto.ResultDTO
	decode(t, w, &result)
	if result.Score != 1 || result.TotalQuestions != 3 || result.StudentID != "student-1" {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Answers) != 3 || result.Answers[1] != -1 || result.Answers[2] != -1 {
		t.Fatalf("answers = %v", result.Answers)
	}

	wantURL := examPath + "/result"
	for _, path := range []string{examPath + "/attempts", examPath} {
		method := http.MethodPost
		if path == examPath {
			method = http.MethodGet
		}
		w = do(t, r, method, path, student, map[string]interface{}{"answers": []int{0, 1, 2}})
		if w.Code != http.StatusConflict {
			t.Fatalf("%s %s status = %d, want 409", method, path, w.Code)
		}
		var conflict dto.AttemptConflictResponse
		decode(t, w, &conflict)
		if conflict.ResultURL != wantURL {
			t.Fatalf("result_url = %q, want %q", conflict.ResultURL, wantURL)
		}
	}

	w = do(t, r, http.MethodGet, wantURL, student, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("review status = %d: %s", w.Code, w.Body.String())
	}
	var detail dto.ResultDetailDTO
	decode(t, w, &detail)
	if detail.Score != 1 || len(detail.Questions) != 3 || detail.Questions[2].IsAnswered {
		t.Fatalf("detail = %+v", detail)
	}

	other := token(t, "student-2", middleware.RoleStudent)
	if w := do(t, r, http.MethodGet, wantURL, other, nil); w.Code != http.StatusNotFound {
		t.Fatalf("other student's review status = %d, want 404", w.Code)
	}
}

func TestInactiveExam(t *testing.T) {
	r := newTestRouter(t)
	admin := token(t, "admin-1", middleware.RoleAdmin)
	student := token(t, "student-1", middleware.RoleStudent)
	exam := createExam(t, r, admin)

	w := do(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/admin/exams/%d/active", exam.ID), admin, map[string]bool{"is_active": false})
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d: %s", w.Code, w.Body.String())
	}

	attempt := fmt.Sprintf("/api/v1/exams/%d/attempts", exam.ID)
	if w := do(t, r, http.MethodPost, attempt, student, map[string]interface{}{"answers": []int{0}}); w.Code != http.StatusForbidden {
		t.Fatalf("submit to inactive status = %d, want 403", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/exams/999/attempts", student, map[string]interface{}{"answers": []int{}}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown exam status = %d, want 404", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/exams/abc/attempts", student, map[string]interface{}{}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/admin/exams/%d/toggle", exam.ID), admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}
	var toggled dto.AdminExamDTO
	decode(t, w, &toggled)
	if !toggled.IsActive {
		t.Fatal("toggle did not reactivate")
	}
	if w := do(t, r, http.MethodPost, attempt, student, map[string]interface{}{"answers": []int{0}}); w.Code != http.StatusCreated {
		t.Fatalf("submit after reactivation status = %d", w.Code)
	}
}

func TestAdminReports(t *testing.T) {
	r := newTestRouter(t)
	admin := token(t, "admin-1", middleware.RoleAdmin)
	exam := createExam(t, r, admin)
	student := token(t, "student-1", middleware.RoleStudent)
	do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/exams/%d/attempts", exam.ID), student, map[string]interface{}{"answers": []int{0, 1, 2}})

	w := do(t, r, http.MethodGet, "/api/v1/admin/results", admin, nil)
	var results []dto.ResultDTO
	decode(t, w, &results)
	if len(results) != 1 || results[0].ExamTitle != "Go Basics" || results[0].Percentage != 100 {
		t.Fatalf("results = %+v", results)
	}

	w = do(t, r, http.MethodGet, "/api/v1/admin/dashboard", admin, nil)
	var dash dto.AdminDashboardDTO
	decode(t, w, &dash)
	if dash.Stats.TotalResults != 1 || dash.Stats.TotalStudents != 1 || len(dash.RecentExams) != 1 {
		t.Fatalf("dashboard = %+v", dash)
	}

	w = do(t, r, http.MethodGet, "/api/v1/admin/results/export", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/vnd.openxmlformats") {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("export is not a zip container")
	}

	w = do(t, r, http.MethodGet, "/api/v1/dashboard", student, nil)
	var sd dto.StudentDashboardDTO
	decode(t, w, &sd)
	if len(sd.RecentResults) != 1 || len(sd.ActiveExams) != 1 || !sd.ActiveExams[0].Attempted {
		t.Fatalf("student dashboard = %+v", sd)
	}
}
