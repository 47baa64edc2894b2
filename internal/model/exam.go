package model

import (
	"time"

	"gorm.io/datatypes"
)

// OptionsPerQuestion is the fixed number of choices every question carries.
const OptionsPerQuestion = 4

// Question is one multiple-choice item. It has no ID of its own: its
// position inside Exam.Questions is its identity and the join key to a
// result's answers.
type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

// Exam owns its ordered questions; they are stored inline in the exams row.
type Exam struct {
	ID              uint                          `gorm:"primarykey" json:"id"`
	Title           string                        `json:"title" gorm:"not null"`
	Description     string                        `json:"description,omitempty" gorm:"type:text"`
	DurationMinutes int                           `json:"duration_minutes" gorm:"not null"`
	Questions       datatypes.JSONSlice[Question] `json:"questions" gorm:"not null"`
	IsActive        bool                          `json:"is_active" gorm:"not null;index"`
	CreatedBy       string                        `json:"created_by" gorm:"not null;size:191"`
	CreatedAt       time.Time                     `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}
