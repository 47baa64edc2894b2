package repository

import (
	"context"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	// WithTx returns a repository bound to an open transaction.
	WithTx(tx *gorm.DB) ResultRepository
	Create(ctx context.Context, result *model.Result) error
	Exists(ctx context.Context, studentID string, examID uint) (bool, error)
	FindByStudentAndExam(ctx context.Context, studentID string, examID uint) (*model.Result, error)
	FindByStudent(ctx context.Context, studentID string, limit int) ([]model.Result, error)
	FindAll(ctx context.Context) ([]model.Result, error)
	Count(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

// Create inserts the result. A second result for the same (student, exam)
// pair fails on the unique index and returns ErrDuplicate.
func (r *resultRepository) Create(ctx context.Context, result *model.Result) error {
	return translate(r.db.WithContext(ctx).Omit("Exam").Create(result).Error)
}

func (r *resultRepository) Exists(ctx context.Context, studentID string, examID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *resultRepository) FindByStudentAndExam(ctx context.Context, studentID string, examID uint) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		First(&result).Error
	if err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

// FindByStudent returns the student's results, newest first. limit <= 0 means all.
func (r *resultRepository) FindByStudent(ctx context.Context, studentID string, limit int) ([]model.Result, error) {
	var results []model.Result
	query := r.db.WithContext(ctx).
		Preload("Exam", selectExamTitle).
		Where("student_id = ?", studentID).
		Order("completed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, translate(err)
}

// FindAll returns every result, newest first, with exam titles preloaded.
func (r *resultRepository) FindAll(ctx context.Context) ([]model.Result, error) {
	var results []model.Result
	err := r.db.WithContext(ctx).
		Preload("Exam", selectExamTitle).
		Order("completed_at DESC, id DESC").
		Find(&results).Error
	return results, translate(err)
}

func (r *resultRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).Count(&count).Error
	return count, translate(err)
}

func (r *resultRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).Distinct("student_id").Count(&count).Error
	return count, translate(err)
}

// selectExamTitle keeps preloads from pulling the question payload.
func selectExamTitle(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}
