package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`

	// Gaji pokok dalam sen untuk menghindari floating error.
	BaseSalaryCents int64 `gorm:"type:bigint;not null;default:0"`

	HireDate         time.Time `gorm:"type:date;not null"`
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
