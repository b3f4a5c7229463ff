package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Setting, error)
	GetValue(ctx context.Context, key string) (string, bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Setting, error) {
	var rows []Setting
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *repository) GetValue(ctx context.Context, key string) (string, bool, error) {
	var row Setting
	err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Value, true, nil
}
