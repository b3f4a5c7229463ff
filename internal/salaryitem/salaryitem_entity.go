package salaryitem

import (
	"time"

	"github.com/google/uuid"
)

// Kategori adalah enum tertutup; data lawas yang masih mengandalkan
// substring nama/kode ditangani di classify.go sebagai fallback.
const (
	CategoryRegularAllowance   = "regular_allowance"
	CategoryIrregularAllowance = "irregular_allowance"
	CategoryBonus              = "bonus"
	CategoryYearEndBonus       = "year_end_bonus"
	CategoryDeduction          = "deduction"
	CategoryAllowance          = "allowance"
)

const (
	RecurringMonthly = "monthly"
	RecurringOnce    = "once"
	RecurringYearly  = "yearly"
)

// Kode item dengan jalur resolusi khusus lewat tabel override bulanan.
const ItemCodePerformance = "PERFORMANCE"

type SalaryItemType struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemCode string    `gorm:"type:varchar(40);not null;uniqueIndex"`
	ItemName string    `gorm:"type:varchar(120);not null"`
	Category string    `gorm:"type:varchar(30);not null"`

	// Flag eksplisit mengalahkan inferensi substring; diisi saat entry data.
	IsFullAttendanceBonus bool `gorm:"not null;default:false"`
	IsYearEndBonus        bool `gorm:"not null;default:false"`

	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryItemType) TableName() string {
	return "salary_item_types"
}

type EmployeeSalaryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemTypeID uuid.UUID `gorm:"type:uuid;not null"`

	AmountCents int64 `gorm:"not null"`

	RecurringType string `gorm:"type:varchar(10);not null;default:'monthly'"`
	// JSON array bulan (1-12); hanya dipakai recurring_type yearly.
	RecurringMonths string `gorm:"type:text"`

	EffectiveDate time.Time  `gorm:"type:date;not null"`
	ExpiryDate    *time.Time `gorm:"type:date"`

	Active    bool `gorm:"not null;default:true;index"`
	IsDeleted bool `gorm:"not null;default:false;index"`

	Type SalaryItemType `gorm:"foreignKey:ItemTypeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeSalaryItem) TableName() string {
	return "employee_salary_items"
}

// MonthlyBonusAdjustment meng-override bonus performa per user per bulan;
// bila ada barisnya, nilainya menang atas default item PERFORMANCE.
type MonthlyBonusAdjustment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bonus_adj_user_month"`
	Month  string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_bonus_adj_user_month"`

	AmountCents int64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MonthlyBonusAdjustment) TableName() string {
	return "monthly_bonus_adjustments"
}

type YearEndBonus struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_year_end_user_year"`
	Year         int       `gorm:"not null;index:idx_year_end_user_year"`
	PaymentMonth int       `gorm:"not null"`

	AmountCents int64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (YearEndBonus) TableName() string {
	return "year_end_bonuses"
}
