package overhead

import (
	"time"

	"github.com/google/uuid"
)

const (
	MethodPerEmployee = "per_employee"
	MethodPerHour     = "per_hour"
	MethodPerRevenue  = "per_revenue"
)

type CostType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(120);not null"`

	AllocationMethod string `gorm:"type:varchar(20);not null"`

	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CostType) TableName() string {
	return "overhead_cost_types"
}

type MonthlyCost struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CostTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_overhead_cost_month"`
	Month      string    `gorm:"type:varchar(7);not null;uniqueIndex:uq_overhead_cost_month"`

	AmountCents int64 `gorm:"not null"`

	CostType CostType `gorm:"foreignKey:CostTypeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MonthlyCost) TableName() string {
	return "monthly_overhead_costs"
}

// Receipt mengaitkan pendapatan ke karyawan penanggung jawab; basis
// alokasi per_revenue.
type Receipt struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_receipt_user_date"`

	ReceiptDate time.Time `gorm:"type:date;not null;index:idx_receipt_user_date"`
	AmountCents int64     `gorm:"not null"`

	IsDeleted bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Receipt) TableName() string {
	return "receipts"
}
