package repository

import (
	"context"

	"github.com/mekalanagasita-alt/Online-Examination-System/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	FindByID(ctx context.Context, id uint) (*model.Exam, error)
	FindAll(ctx context.Context) ([]model.Exam, error)
	FindActive(ctx context.Context) ([]model.Exam, error)
	FindRecent(ctx context.Context, limit int) ([]model.Exam, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Count(ctx context.Context, activeOnly bool) (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	return translate(r.db.WithContext(ctx).Create(exam).Error)
}

func (r *examRepository) FindByID(ctx context.Context, id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).First(&exam, id).Error; err != nil {
		return nil, translate(err)
	}
	return &exam, nil
}

func (r *examRepository) FindAll(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&exams).Error
	return exams, translate(err)
}

func (r *examRepository) FindActive(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&exams).Error
	return exams, translate(err)
}

func (r *examRepository) FindRecent(ctx context.Context, limit int) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&exams).Error
	return exams, translate(err)
}

func (r *examRepository) SetActive(ctx context.Context, id uint, active bool) error {
	// Update with a map so that false is written instead of skipped as a zero value.
	res := r.db.WithContext(ctx).Model(&model.Exam{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *examRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Exam{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, translate(err)
}
