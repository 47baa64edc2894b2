package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mekalanagasita-alt/Online-Examination-System/config"
	"github.com/mekalanagasita-alt/Online-Examination-System/database"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	admin      AdminExamService
	userExams  UserExamService
	submission SubmissionService
	reports    ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open(config.Database{
		Driver: database.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
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

	env := &testEnv{
		db:         db,
		examRepo:   repository.NewExamRepository(db),
		resultRepo: repository.NewResultRepository(db),
	}
	env.admin = NewAdminExamService(env.examRepo)
	env.userExams = NewUserExamService(env.examRepo, env.resultRepo)
	env.submission = NewSubmissionService(env.examRepo, env.resultRepo, NewScoringService(), db)
	env.reports = NewReportService(env.examRepo, env.resultRepo, env.userExams)
	return env
}

func intPtr(v int) *int { return &v }

func examRequest(title string, correct ...int) dto.ExamCreateDTO {
	req := dto.ExamCreateDTO{Title: title, DurationMinutes: 15}
	for i, c := range correct {
		req.Questions = append(req.Questions, dto.QuestionCreateDTO{
			Text:               fmt.Sprintf("Question %d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectOptionIndex: intPtr(c),
		})
	}
	return req
}

// createExam stores an active exam through the admin service.
func (e *testEnv) createExam(t *testing.T, title string, correct ...int) uint {
	t.Helper()
	exam, err := e.admin.CreateExam(context.Background(), examRequest(title, correct...), "admin-1")
	if err != nil {
		t.Fatalf("CreateExam(%q): %v", title, err)
	}
	return exam.ID
}
