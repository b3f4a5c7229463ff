package timesheet

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ts *Timesheet) error
	Update(ctx context.Context, ts *Timesheet) error
	FindByID(ctx context.Context, id string) (*Timesheet, error)
	// FindByUserAndRange hanya mengembalikan baris yang belum di-soft-delete.
	FindByUserAndRange(ctx context.Context, userID string, first, last time.Time) ([]Timesheet, error)
	FindByRange(ctx context.Context, first, last time.Time) ([]Timesheet, error)
	BatchDelete(ctx context.Context, ids []string) ([]Timesheet, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r *repository) Update(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).Save(ts).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		First(&ts, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) FindByUserAndRange(ctx context.Context, userID string, first, last time.Time) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("work_date BETWEEN ? AND ?", first, last).
		Where("is_deleted = false").
		Order("work_date ASC, work_type_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByRange(ctx context.Context, first, last time.Time) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Where("work_date BETWEEN ? AND ?", first, last).
		Where("is_deleted = false").
		Order("user_id ASC, work_date ASC").
		Find(&rows).Error
	return rows, err
}

// BatchDelete soft-delete dan mengembalikan baris yang terhapus supaya
// caller tahu cache (user, bulan) mana yang harus di-invalidate.
func (r *repository) BatchDelete(ctx context.Context, ids []string) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_deleted = false").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return rows, nil
	}

	err = r.db.WithContext(ctx).
		Model(&Timesheet{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return rows, err
}
