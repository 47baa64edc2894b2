package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionService grades and stores exam attempts. Every student gets at
// most one result per exam.
type SubmissionService interface {
	SubmitAttempt(ctx context.Context, studentID string, examID uint, answers []int, timeTakenSeconds int) (*dto.ResultDTO, error)
	GetResultForReview(ctx context.Context, studentID string, examID uint) (*dto.ResultDetailDTO, error)
}

type submissionService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	scoring    ScoringService
	db         *gorm.DB // Used for transactions within service methods
	now        func() time.Time
}

func NewSubmissionService(
	examRepo repository.ExamRepository,
	resultRepo repository.ResultRepository,
	scoring ScoringService,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
		scoring:    scoring,
		db:         db,
		now:        time.Now,
	}
}

// SubmitAttempt grades answers against the exam and stores the result.
//
// Order of checks: unknown exam, existing result, inactive exam. The ledger
// check is a fast path only; the insert itself runs in a transaction against
// the unique (student_id, exam_id) index, so a racing duplicate still ends
// in ErrDuplicateAttempt and never in a second row.
func (s *submissionService) SubmitAttempt(ctx context.Context, studentID string, examID uint, answers []int, timeTakenSeconds int) (*dto.ResultDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: exam not found")
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitAttempt: failed to load exam")
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}

	attempted, err := s.resultRepo.Exists(ctx, studentID, examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: ledger check failed")
		return nil, fmt.Errorf("error checking attempts for exam %d: %w", examID, err)
	}
	if attempted {
		log.Info().Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: already attempted")
		return nil, fmt.Errorf("exam %d: %w", examID, ErrDuplicateAttempt)
	}

	if !exam.IsActive {
		return nil, fmt.Errorf("exam %d: %w", examID, ErrExamInactive)
	}

	if len(answers) > len(exam.Questions) {
		log.Warn().Uint("examID", examID).Int("submitted", len(answers)).Int("questions", len(exam.Questions)).
			Msg("SubmitAttempt: ignoring answers beyond the last question")
	}

	grade := s.scoring.Score(exam.Questions, answers)
	if timeTakenSeconds < 0 {
		timeTakenSeconds = 0
	}

	result := model.Result{
		StudentID:        studentID,
		ExamID:           examID,
		Answers:          datatypes.NewJSONSlice(grade.Answers),
		Score:            grade.Score,
		TotalQuestions:   grade.TotalQuestions,
		Percentage:       grade.Percentage,
		TimeTakenSeconds: timeTakenSeconds,
		CompletedAt:      s.now().UTC(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.resultRepo.WithTx(tx).Create(ctx, &result)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Info().Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: lost race to a concurrent submission")
			return nil, fmt.Errorf("exam %d: %w", examID, ErrDuplicateAttempt)
		}
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("SubmitAttempt: failed to save result")
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.Info().
		Uint("resultID", result.ID).
		Uint("examID", examID).
		Str("studentID", studentID).
		Int("score", result.Score).
		Int("total", result.TotalQuestions).
		Msg("Exam attempt graded")

	resp := toResultDTO(&result)
	resp.ExamTitle = exam.Title
	return resp, nil
}

// GetResultForReview returns the stored result with the per-question
// breakdown rebuilt from the exam's current answer key.
func (s *submissionService) GetResultForReview(ctx context.Context, studentID string, examID uint) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByStudentAndExam(ctx, studentID, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrResultNotFound)
		}
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("Failed to load result")
		return nil, fmt.Errorf("error fetching result: %w", err)
	}

	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("exam %d: %w", examID, ErrExamNotFound)
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}

	detail := dto.ResultDetailDTO{ResultDTO: *toResultDTO(result)}
	detail.ExamTitle = exam.Title
	detail.Questions = make([]dto.QuestionReviewDTO, 0, len(exam.Questions))
	for _, r := range s.scoring.Review(exam.Questions, result.Answers) {
		detail.Questions = append(detail.Questions, dto.QuestionReviewDTO{
			Index:              r.Index,
			Text:               r.Text,
			Options:            r.Options,
			CorrectOptionIndex: r.CorrectOptionIndex,
			SubmittedIndex:     r.SubmittedIndex,
			IsAnswered:         r.IsAnswered,
			IsCorrect:          r.IsCorrect,
		})
	}
	return &detail, nil
}

func toResultDTO(result *model.Result) *dto.ResultDTO {
	var resp dto.ResultDTO
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Uint("resultID", result.ID).Msg("Failed to copy Result model to ResultDTO")
	}
	resp.Answers = append([]int{}, result.Answers...)
	if result.Exam.ID != 0 {
		resp.ExamTitle = result.Exam.Title
	}
	return &resp
}
