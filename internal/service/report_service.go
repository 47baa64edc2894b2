package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	recentLimit       = 5
	resultsSheetName  = "Results"
	percentCellFormat = "0.00"
)

type ReportService interface {
	ListAllResults(ctx context.Context) ([]dto.ResultDTO, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error)
	StudentDashboard(ctx context.Context, studentID string) (*dto.StudentDashboardDTO, error)
	ExportResults(ctx context.Context, w io.Writer) error
}

type reportService struct {
	examRepo    repository.ExamRepository
	resultRepo  repository.ResultRepository
	userExamSvc UserExamService
}

func NewReportService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository, userExamSvc UserExamService) ReportService {
	return &reportService{examRepo: examRepo, resultRepo: resultRepo, userExamSvc: userExamSvc}
}

// ListAllResults returns every result newest first, with exam titles.
func (s *reportService) ListAllResults(ctx context.Context) ([]dto.ResultDTO, error) {
	results, err := s.resultRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	out := make([]dto.ResultDTO, 0, len(results))
	for i := range results {
		out = append(out, *toResultDTO(&results[i]))
	}
	return out, nil
}

func (s *reportService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	var (
		stats dto.StatsDTO
		err   error
	)
	if stats.TotalExams, err = s.examRepo.Count(ctx, false); err != nil {
		return nil, fmt.Errorf("error counting exams: %w", err)
	}
	if stats.ActiveExams, err = s.examRepo.Count(ctx, true); err != nil {
		return nil, fmt.Errorf("error counting active exams: %w", err)
	}
	if stats.TotalResults, err = s.resultRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting results: %w", err)
	}
	if stats.TotalStudents, err = s.resultRepo.CountStudents(ctx); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	recent, err := s.examRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent exams: %w", err)
	}
	resp := &dto.AdminDashboardDTO{Stats: stats, RecentExams: make([]dto.AdminExamDTO, 0, len(recent))}
	for i := range recent {
		resp.RecentExams = append(resp.RecentExams, *toAdminExamDTO(&recent[i], false))
	}
	return resp, nil
}

func (s *reportService) StudentDashboard(ctx context.Context, studentID string) (*dto.StudentDashboardDTO, error) {
	exams, err := s.userExamSvc.ListActiveExams(ctx, studentID)
	if err != nil {
		return nil, err
	}
	results, err := s.resultRepo.FindByStudent(ctx, studentID, recentLimit)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("Failed to get recent results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	resp := &dto.StudentDashboardDTO{ActiveExams: exams, RecentResults: make([]dto.ResultDTO, 0, len(results))}
	for i := range results {
		resp.RecentResults = append(resp.RecentResults, *toResultDTO(&results[i]))
	}
	return resp, nil
}

// ExportResults writes all results as an XLSX workbook with one row per result.
func (s *reportService) ExportResults(ctx context.Context, w io.Writer) error {
	results, err := s.ListAllResults(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Result ID", "Student ID", "Exam ID", "Exam", "Score", "Total Questions", "Percentage", "Time Taken (s)", "Completed At"}
	if err := f.SetSheetRow(resultsSheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ID, r.StudentID, r.ExamID, r.ExamTitle, r.Score, r.TotalQuestions,
			math.Round(r.Percentage*100) / 100, r.TimeTakenSeconds, r.CompletedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(resultsSheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if len(results) > 0 {
		format := percentCellFormat
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return fmt.Errorf("create style: %w", err)
		}
		last := fmt.Sprintf("G%d", len(results)+1)
		if err := f.SetCellStyle(resultsSheetName, "G2", last, style); err != nil {
			return fmt.Errorf("style percentage column: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.Info().Int("rows", len(results)).Msg("Results exported")
	return nil
}
