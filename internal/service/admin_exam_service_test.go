package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
)

func TestCreateExam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.admin.CreateExam(ctx, examRequest("Go Basics", 0, 3), "admin-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if created.ID == 0 || !created.IsActive || created.CreatedBy != "admin-1" {
		t.Fatalf("unexpected exam: %+v", created)
	}
	if created.QuestionCount != 2 || len(created.Questions) != 2 {
		t.Fatalf("question count = %d/%d, want 2", created.QuestionCount, len(created.Questions))
	}
	if created.Questions[1].CorrectOptionIndex != 3 {
		t.Fatalf("key[1] = %d, want 3", created.Questions[1].CorrectOptionIndex)
	}

	stored, err := env.examRepo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(stored.Questions) != 2 || stored.Questions[0].Options[3] != "d" {
		t.Fatalf("stored questions = %+v", stored.Questions)
	}
}

func TestCreateExamValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ExamCreateDTO)
		want   string
	}{
		{"missing title", func(r *dto.ExamCreateDTO) { r.Title = "" }, "Title"},
		{"no questions", func(r *dto.ExamCreateDTO) { r.Questions = nil }, "Questions"},
		{"zero duration", func(r *dto.ExamCreateDTO) { r.DurationMinutes = 0 }, "DurationMinutes"},
		{"three options", func(r *dto.ExamCreateDTO) { r.Questions[0].Options = []string{"a", "b", "c"} }, "Options"},
		{"blank option", func(r *dto.ExamCreateDTO) { r.Questions[0].Options[2] = "" }, "Options[2]"},
		{"missing key", func(r *dto.ExamCreateDTO) { r.Questions[0].CorrectOptionIndex = nil }, "CorrectOptionIndex"},
		{"key too large", func(r *dto.ExamCreateDTO) { r.Questions[1].CorrectOptionIndex = intPtr(4) }, "question 1"},
		{"negative key", func(r *dto.ExamCreateDTO) { r.Questions[0].CorrectOptionIndex = intPtr(-1) }, "question 0"},
	}

	env := newTestEnv(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := examRequest("Broken", 0, 1)
			tt.mutate(&req)

			_, err := env.admin.CreateExam(context.Background(), req, "admin-1")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if !strings.Contains(verr.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", verr.Error(), tt.want)
			}
		})
	}

	count, err := env.examRepo.Count(context.Background(), false)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid exams were stored: %d", count)
	}
}

func TestSetExamActiveAndToggle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createExam(t, "Toggle Me", 0)

	exam, err := env.admin.SetExamActive(ctx, id, false)
	if err != nil {
		t.Fatalf("SetExamActive: %v", err)
	}
	if exam.IsActive {
		t.Fatal("exam still active")
	}

	exam, err = env.admin.ToggleExam(ctx, id)
	if err != nil {
		t.Fatalf("ToggleExam: %v", err)
	}
	if !exam.IsActive {
		t.Fatal("toggle did not reactivate exam")
	}

	if _, err := env.admin.SetExamActive(ctx, 999, true); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("SetExamActive(999) err = %v, want ErrExamNotFound", err)
	}
	if _, err := env.admin.ToggleExam(ctx, 999); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("ToggleExam(999) err = %v, want ErrExamNotFound", err)
	}
}

func TestListExamsOmitsQuestions(t *testing.T) {
	env := newTestEnv(t)
	env.createExam(t, "First", 0)
	env.createExam(t, "Second", 1, 2)

	exams, err := env.admin.ListExams(context.Background())
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if len(exams) != 2 {
		t.Fatalf("len = %d, want 2", len(exams))
	}
	for _, e := range exams {
		if e.Questions != nil {
			t.Fatalf("exam %d carries questions in listing", e.ID)
		}
	}
}
