package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	// FindApprovedOverlapping mengembalikan cuti approved (belum dihapus)
	// yang rentang tanggalnya beririsan dengan [first, last]:
	// start_date <= last AND end_date >= first.
	FindApprovedOverlapping(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]LeaveRequest, error)

	// MenstrualDaysBefore menjumlahkan hari cuti haid approved dalam
	// [yearStart, before) untuk aturan 3 hari bebas per tahun kalender.
	MenstrualDaysBefore(ctx context.Context, userID string, yearStart, before time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedOverlapping(ctx context.Context, userID string, first, last time.Time, leaveTypes ...string) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("is_deleted = false").
		Where("start_date <= ? AND end_date >= ?", last, first).
		Order("start_date ASC")

	if len(leaveTypes) > 0 {
		q = q.Where("leave_type IN ?", leaveTypes)
	}

	var rows []LeaveRequest
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) MenstrualDaysBefore(ctx context.Context, userID string, yearStart, before time.Time) (float64, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("is_deleted = false").
		Where("leave_type = ?", TypeMenstrual).
		Where("start_date >= ? AND start_date < ?", yearStart, before).
		Find(&rows).Error
	if err != nil {
		return 0, err
	}

	var days float64
	for _, row := range rows {
		days += row.HoursEquivalent() / 8
	}
	return days, nil
}
