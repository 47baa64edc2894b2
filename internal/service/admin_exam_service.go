package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type AdminExamService interface {
	CreateExam(ctx context.Context, req dto.ExamCreateDTO, createdBy string) (*dto.AdminExamDTO, error)
	ListExams(ctx context.Context) ([]dto.AdminExamDTO, error)
	SetExamActive(ctx context.Context, examID uint, active bool) (*dto.AdminExamDTO, error)
	ToggleExam(ctx context.Context, examID uint) (*dto.AdminExamDTO, error)
}

type adminExamService struct {
	examRepo repository.ExamRepository
	validate *validator.Validate
}

func NewAdminExamService(examRepo repository.ExamRepository) AdminExamService {
	v := validator.New()
	// Same tags gin uses when binding, so HTTP and direct callers get one rule set.
	v.SetTagName("binding")
	return &adminExamService{examRepo: examRepo, validate: v}
}

func (s *adminExamService) CreateExam(ctx context.Context, req dto.ExamCreateDTO, createdBy string) (*dto.AdminExamDTO, error) {
	if err := s.validateExam(req); err != nil {
		log.Warn().Err(err).Str("createdBy", createdBy).Msg("CreateExam: rejected invalid exam")
		return nil, err
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, model.Question{
			Text:               q.Text,
			Options:            append([]string(nil), q.Options...),
			CorrectOptionIndex: *q.CorrectOptionIndex,
		})
	}

	exam := model.Exam{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Questions:       datatypes.NewJSONSlice(questions),
		IsActive:        true,
		CreatedBy:       createdBy,
	}
	if err := s.examRepo.Create(ctx, &exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam in database")
		return nil, fmt.Errorf("database error creating exam: %w", err)
	}

	log.Info().Uint("examID", exam.ID).Int("questions", len(questions)).Str("createdBy", createdBy).Msg("Exam created")
	return toAdminExamDTO(&exam, true), nil
}

func (s *adminExamService) ListExams(ctx context.Context) ([]dto.AdminExamDTO, error) {
	exams, err := s.examRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}
	out := make([]dto.AdminExamDTO, 0, len(exams))
	for i := range exams {
		out = append(out, *toAdminExamDTO(&exams[i], false))
	}
	return out, nil
}

func (s *adminExamService) SetExamActive(ctx context.Context, examID uint, active bool) (*dto.AdminExamDTO, error) {
	if err := s.examRepo.SetActive(ctx, examID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to update exam status")
		return nil, fmt.Errorf("error updating exam %d: %w", examID, err)
	}
	log.Info().Uint("examID", examID).Bool("active", active).Msg("Exam status changed")
	return s.reload(ctx, examID)
}

func (s *adminExamService) ToggleExam(ctx context.Context, examID uint) (*dto.AdminExamDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	return s.SetExamActive(ctx, examID, !exam.IsActive)
}

func (s *adminExamService) reload(ctx context.Context, examID uint) (*dto.AdminExamDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	return toAdminExamDTO(exam, true), nil
}

// validateExam runs the binding tags and then the checks tags cannot express.
// All problems are collected rather than stopping at the first.
func (s *adminExamService) validateExam(req dto.ExamCreateDTO) error {
	var problems []string

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &ValidationError{Problems: []string{err.Error()}}
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
	}

	for i, q := range req.Questions {
		if q.CorrectOptionIndex == nil {
			continue // reported by the required tag
		}
		if idx := *q.CorrectOptionIndex; idx < 0 || idx >= len(q.Options) {
			problems = append(problems, fmt.Sprintf("question %d: correct_option_index %d out of range [0, %d)", i, idx, len(q.Options)))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func toAdminExamDTO(exam *model.Exam, withQuestions bool) *dto.AdminExamDTO {
	var resp dto.AdminExamDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Uint("examID", exam.ID).Msg("Failed to copy Exam model to AdminExamDTO")
	}
	resp.QuestionCount = len(exam.Questions)
	resp.Questions = nil
	if withQuestions {
		resp.Questions = make([]dto.QuestionDTO, 0, len(exam.Questions))
		for i, q := range exam.Questions {
			resp.Questions = append(resp.Questions, dto.QuestionDTO{
				Index:              i,
				Text:               q.Text,
				Options:            q.Options,
				CorrectOptionIndex: q.CorrectOptionIndex,
			})
		}
	}
	return &resp
}
