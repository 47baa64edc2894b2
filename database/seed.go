package database

import (
	"context"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SampleExamAuthor is recorded as CreatedBy on seeded exams.
const SampleExamAuthor = "system"

// SeedSampleExam inserts the "Python Basics Quiz" when the exams table is empty.
// It reports whether an exam was created.
func SeedSampleExam(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Exam{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Debug().Int64("exams", count).Msg("Exams already present, skipping sample data")
		return false, nil
	}

	exam := model.Exam{
		Title:           "Python Basics Quiz",
		Description:     "Test your knowledge of Python programming basics",
		DurationMinutes: 30,
		IsActive:        true,
		CreatedBy:       SampleExamAuthor,
		Questions: datatypes.NewJSONSlice([]model.Question{
			{
				Text:               "What is the correct way to create a list in Python?",
				Options:            []string{"list = []", "list = ()", "list = {}", `list = ""`},
				CorrectOptionIndex: 0,
			},
			{
				Text:               "Which keyword is used to define a function in Python?",
				Options:            []string{"function", "def", "define", "func"},
				CorrectOptionIndex: 1,
			},
			{
				Text:               `What does "len()" function do in Python?`,
				Options:            []string{"Returns length of object", "Returns type of object", "Returns value of object", "Returns name of object"},
				CorrectOptionIndex: 0,
			},
			{
				Text:               "Which of the following is a mutable data type in Python?",
				Options:            []string{"tuple", "string", "list", "int"},
				CorrectOptionIndex: 2,
			},
			{
				Text:               "What is the output of print(2 ** 3) in Python?",
				Options:            []string{"6", "8", "9", "5"},
				CorrectOptionIndex: 1,
			},
		}),
	}
	if err := db.WithContext(ctx).Create(&exam).Error; err != nil {
		return false, err
	}
	log.Info().Uint("examID", exam.ID).Str("title", exam.Title).Msg("Sample exam created")
	return true, nil
}
