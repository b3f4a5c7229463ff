package payroll

import "time"

// Snapshot tidak pernah di-update: setiap finalize menambah versi baru
// untuk bulan yang sama. Diff versi N dihitung terhadap versi N-1.
type Snapshot struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Month   string `gorm:"type:varchar(7);not null;uniqueIndex:uq_payroll_snapshot_month_version"`
	Version int    `gorm:"not null;uniqueIndex:uq_payroll_snapshot_month_version"`

	CreatedBy string `gorm:"type:varchar(64);not null"`
	Notes     string `gorm:"type:text"`

	// Serialisasi []EmployeePayroll lengkap per karyawan.
	SnapshotData []byte `gorm:"type:jsonb;not null"`
	// Serialisasi ChangesSummary; NULL untuk versi pertama atau bila data
	// versi sebelumnya tidak bisa diparse.
	ChangesSummary []byte `gorm:"type:jsonb"`

	CreatedAt time.Time
}

func (Snapshot) TableName() string {
	return "payroll_snapshots"
}
