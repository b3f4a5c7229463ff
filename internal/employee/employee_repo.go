package employee

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// FindByID mengembalikan (nil, nil) untuk karyawan yang tidak ada atau
	// sudah soft-delete; batch payroll melewatkan karyawan semacam itu
	// tanpa error.
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	// ID bukan UUID tak mungkin cocok; jangan sampai jadi error cast
	// di postgres.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("employment_status = ?", "ACTIVE").
		First(&empl, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("employment_status = ?", "ACTIVE").
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employment_status = ?", "ACTIVE").
		Count(&count).Error
	return count, err
}
