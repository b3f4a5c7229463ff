package overhead

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overhead_repo.go -destination=mock/overhead_repo_mock.go -package=mock
type Repository interface {
	// FindMonthlyCosts mengembalikan biaya bulan itu dengan tipe biayanya
	// (metode alokasi ikut terbaca); tipe nonaktif tidak dialokasikan.
	FindMonthlyCosts(ctx context.Context, month string) ([]MonthlyCost, error)

	// RevenueByUser menjumlahkan pendapatan per karyawan dalam rentang
	// tanggal; basis alokasi per_revenue.
	RevenueByUser(ctx context.Context, first, last time.Time) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindMonthlyCosts(ctx context.Context, month string) ([]MonthlyCost, error) {
	var rows []MonthlyCost
	err := r.db.WithContext(ctx).
		Preload("CostType").
		Joins("JOIN overhead_cost_types ON overhead_cost_types.id = monthly_overhead_costs.cost_type_id").
		Where("monthly_overhead_costs.month = ?", month).
		Where("overhead_cost_types.active = true").
		Find(&rows).Error
	return rows, err
}

func (r *repository) RevenueByUser(ctx context.Context, first, last time.Time) (map[string]int64, error) {
	var rows []struct {
		UserID      string
		AmountCents int64
	}
	err := r.db.WithContext(ctx).
		Raw(`
SELECT user_id::text AS user_id, SUM(amount_cents) AS amount_cents
FROM receipts
WHERE is_deleted = false
	AND receipt_date BETWEEN ? AND ?
GROUP BY user_id
`, first, last).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	revenue := make(map[string]int64, len(rows))
	for _, row := range rows {
		revenue[row.UserID] = row.AmountCents
	}
	return revenue, nil
}
