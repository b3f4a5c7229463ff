package allowance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=allowance_repo.go -destination=mock/allowance_repo_mock.go -package=mock
type TripRepository interface {
	// FindApprovedByUserAndRange mengembalikan perjalanan dinas approved
	// (belum dihapus) dengan trip_date dalam [first, last].
	FindApprovedByUserAndRange(ctx context.Context, userID string, first, last time.Time) ([]BusinessTrip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) FindApprovedByUserAndRange(ctx context.Context, userID string, first, last time.Time) ([]BusinessTrip, error) {
	var rows []BusinessTrip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", TripStatusApproved).
		Where("is_deleted = false").
		Where("trip_date BETWEEN ? AND ?", first, last).
		Order("trip_date ASC").
		Find(&rows).Error
	return rows, err
}
