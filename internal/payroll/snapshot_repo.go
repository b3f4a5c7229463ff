package payroll

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=snapshot_repo.go -destination=mock/snapshot_repo_mock.go -package=mock
type SnapshotRepository interface {
	WithTx(tx *gorm.DB) SnapshotRepository
	Create(ctx context.Context, snapshot *Snapshot) error
	// FindLatestByMonth nil bila bulan itu belum pernah difinalisasi.
	FindLatestByMonth(ctx context.Context, month string) (*Snapshot, error)
	// FindByMonth mengembalikan metadata semua versi tanpa kolom data
	// besar, urut versi menurun.
	FindByMonth(ctx context.Context, month string) ([]Snapshot, error)
	FindByID(ctx context.Context, id int64) (*Snapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) WithTx(tx *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: tx}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *Snapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *snapshotRepository) FindLatestByMonth(ctx context.Context, month string) (*Snapshot, error) {
	var row Snapshot
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("version DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *snapshotRepository) FindByMonth(ctx context.Context, month string) ([]Snapshot, error) {
	var rows []Snapshot
	err := r.db.WithContext(ctx).
		Select("id", "month", "version", "created_by", "notes", "changes_summary", "created_at").
		Where("month = ?", month).
		Order("version DESC").
		Find(&rows).Error
	return rows, err
}

func (r *snapshotRepository) FindByID(ctx context.Context, id int64) (*Snapshot, error) {
	var row Snapshot
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
