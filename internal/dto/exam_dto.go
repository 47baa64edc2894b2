package dto

import "time"

// QuestionTakeDTO is a question as shown to a student taking the exam.
type QuestionTakeDTO struct {
	Index   int      `json:"index"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ExamTakeDTO is the exam without its answer key.
type ExamTakeDTO struct {
	ID              uint              `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	DurationMinutes int               `json:"duration_minutes"`
	Questions       []QuestionTakeDTO `json:"questions" copier:"-"`
}

// ExamSummaryDTO is used for listing exams available to students.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	Attempted       bool      `json:"attempted"`
	CreatedAt       time.Time `json:"created_at"`
}

// AttemptSubmitDTO is the student's submission. Answers are addressed by
// question position; null or a missing tail position means unanswered.
type AttemptSubmitDTO struct {
	Answers          []*int `json:"answers"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}
