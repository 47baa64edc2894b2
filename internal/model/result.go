package model

import (
	"time"

	"gorm.io/datatypes"
)

// Unanswered marks a skipped question in Result.Answers. It never equals a
// valid option index.
const Unanswered = -1

// Result is the single graded submission of one student for one exam.
// The composite unique index is what keeps it single.
type Result struct {
	ID               uint                     `gorm:"primarykey" json:"id"`
	StudentID        string                   `json:"student_id" gorm:"not null;size:191;uniqueIndex:idx_results_student_exam,priority:1"`
	ExamID           uint                     `json:"exam_id" gorm:"not null;uniqueIndex:idx_results_student_exam,priority:2;index"`
	Exam             Exam                     `json:"-" gorm:"foreignKey:ExamID"`
	Answers          datatypes.JSONSlice[int] `json:"answers" gorm:"not null"`
	Score            int                      `json:"score" gorm:"not null"`
	TotalQuestions   int                      `json:"total_questions" gorm:"not null"`
	Percentage       float64                  `json:"percentage" gorm:"not null"`
	TimeTakenSeconds int                      `json:"time_taken_seconds" gorm:"not null"`
	CompletedAt      time.Time                `json:"completed_at" gorm:"not null;index"`
}
