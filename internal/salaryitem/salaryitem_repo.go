package salaryitem

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryitem_repo.go -destination=mock/salaryitem_repo_mock.go -package=mock
type Repository interface {
	// FindActiveByUser mengembalikan item aktif (tipe ikut di-preload);
	// filter bulan dilakukan di service lewat ShouldPayInMonth.
	FindActiveByUser(ctx context.Context, userID string) ([]EmployeeSalaryItem, error)

	// FindBonusAdjustment nil bila tidak ada override untuk user+bulan.
	FindBonusAdjustment(ctx context.Context, userID, month string) (*MonthlyBonusAdjustment, error)

	FindYearEndBonuses(ctx context.Context, userID string, year, paymentMonth int) ([]YearEndBonus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveByUser(ctx context.Context, userID string) ([]EmployeeSalaryItem, error) {
	var rows []EmployeeSalaryItem
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("user_id = ?", userID).
		Where("active = true").
		Where("is_deleted = false").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBonusAdjustment(ctx context.Context, userID, month string) (*MonthlyBonusAdjustment, error) {
	var row MonthlyBonusAdjustment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindYearEndBonuses(ctx context.Context, userID string, year, paymentMonth int) ([]YearEndBonus, error) {
	var rows []YearEndBonus
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND payment_month = ?", userID, year, paymentMonth).
		Find(&rows).Error
	return rows, err
}
