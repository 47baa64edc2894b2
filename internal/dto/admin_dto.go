package dto

import "time"

// QuestionCreateDTO is one question inside ExamCreateDTO. CorrectOptionIndex
// is a pointer so that a missing value is told apart from option 0.
type QuestionCreateDTO struct {
	Text               string   `json:"text" binding:"required"`
	Options            []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectOptionIndex *int     `json:"correct_option_index" binding:"required"`
}

// ExamCreateDTO is for admin to create a new exam with all its questions.
type ExamCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,gt=0"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// ExamActiveDTO sets the visibility flag of an exam.
type ExamActiveDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// QuestionDTO is the full question, answer key included. Admin only.
type QuestionDTO struct {
	Index              int      `json:"index"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

// AdminExamDTO is the admin view of an exam.
type AdminExamDTO struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	IsActive        bool          `json:"is_active"`
	CreatedBy       string        `json:"created_by"`
	QuestionCount   int           `json:"question_count"`
	Questions       []QuestionDTO `json:"questions,omitempty" copier:"-"`
	CreatedAt       time.Time     `json:"created_at"`
}

// StatsDTO carries the admin dashboard counters.
type StatsDTO struct {
	TotalExams    int64 `json:"total_exams"`
	ActiveExams   int64 `json:"active_exams"`
	TotalResults  int64 `json:"total_results"`
	TotalStudents int64 `json:"total_students"`
}

// AdminDashboardDTO is the admin landing page payload.
type AdminDashboardDTO struct {
	Stats       StatsDTO       `json:"stats"`
	RecentExams []AdminExamDTO `json:"recent_exams"`
}
