package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserExamService interface {
	ListActiveExams(ctx context.Context, studentID string) ([]dto.ExamSummaryDTO, error)
	GetExamForTaking(ctx context.Context, studentID string, examID uint) (*dto.ExamTakeDTO, error)
}

type userExamService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
}

func NewUserExamService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository) UserExamService {
	return &userExamService{examRepo: examRepo, resultRepo: resultRepo}
}

// ListActiveExams returns the exams open to students. When studentID is set
// each summary says whether that student already has a result for it.
func (s *userExamService) ListActiveExams(ctx context.Context, studentID string) ([]dto.ExamSummaryDTO, error) {
	exams, err := s.examRepo.FindActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get active exams from repository")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	attempted := map[uint]bool{}
	if studentID != "" {
		results, err := s.resultRepo.FindByStudent(ctx, studentID, 0)
		if err != nil {
			log.Error().Err(err).Str("studentID", studentID).Msg("Failed to get student results")
			return nil, fmt.Errorf("error fetching results: %w", err)
		}
		for _, r := range results {
			attempted[r.ExamID] = true
		}
	}

	dtos := make([]dto.ExamSummaryDTO, 0, len(exams))
	for i := range exams {
		summary := toExamSummaryDTO(&exams[i])
		summary.Attempted = attempted[exams[i].ID]
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// GetExamForTaking returns the exam without answer keys. A student who
// already has a result gets ErrDuplicateAttempt so the caller can send them
// to it.
func (s *userExamService) GetExamForTaking(ctx context.Context, studentID string, examID uint) (*dto.ExamTakeDTO, error) {
	attempted, err := s.resultRepo.Exists(ctx, studentID, examID)
	if err != nil {
		return nil, fmt.Errorf("error checking attempts for exam %d: %w", examID, err)
	}
	if attempted {
		return nil, fmt.Errorf("exam %d: %w", examID, ErrDuplicateAttempt)
	}

	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to get exam from repository")
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	if !exam.IsActive {
		return nil, fmt.Errorf("exam %d: %w", examID, ErrExamInactive)
	}

	var resp dto.ExamTakeDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Msg("Failed to copy Exam model to ExamTakeDTO")
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	resp.Questions = make([]dto.QuestionTakeDTO, 0, len(exam.Questions))
	for i, q := range exam.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionTakeDTO{Index: i, Text: q.Text, Options: q.Options})
	}
	return &resp, nil
}

func toExamSummaryDTO(exam *model.Exam) dto.ExamSummaryDTO {
	return dto.ExamSummaryDTO{
		ID:              exam.ID,
		Title:           exam.Title,
		Description:     exam.Description,
		DurationMinutes: exam.DurationMinutes,
		QuestionCount:   len(exam.Questions),
		CreatedAt:       exam.CreatedAt,
	}
}
