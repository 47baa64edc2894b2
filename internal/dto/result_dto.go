package dto

import "time"

// ResultDTO is a stored result.
type ResultDTO struct {
	ID               uint      `json:"id"`
	StudentID        string    `json:"student_id"`
	ExamID           uint      `json:"exam_id"`
	ExamTitle        string    `json:"exam_title,omitempty"`
	Answers          []int     `json:"answers" copier:"-"`
	Score            int       `json:"score"`
	TotalQuestions   int       `json:"total_questions"`
	Percentage       float64   `json:"percentage"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	CompletedAt      time.Time `json:"completed_at"`
}

// QuestionReviewDTO is one row of the post-exam review.
type QuestionReviewDTO struct {
	Index              int      `json:"index"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	SubmittedIndex     int      `json:"submitted_index"`
	IsAnswered         bool     `json:"is_answered"`
	IsCorrect          bool     `json:"is_correct"`
}

// ResultDetailDTO is a result with its per-question breakdown.
type ResultDetailDTO struct {
	ResultDTO
	Questions []QuestionReviewDTO `json:"questions"`
}

// StudentDashboardDTO lists open exams and the latest results of a student.
type StudentDashboardDTO struct {
	ActiveExams   []ExamSummaryDTO `json:"active_exams"`
	RecentResults []ResultDTO      `json:"recent_results"`
}
