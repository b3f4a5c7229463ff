package timesheet

import (
	"time"

	"github.com/google/uuid"
)

type Timesheet struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_timesheet_user_date"`
	WorkDate     time.Time `gorm:"type:date;not null;index:idx_timesheet_user_date"`
	WorkTypeCode int       `gorm:"type:smallint;not null"`

	// Jam dicatat dalam kelipatan 0.5.
	Hours float64 `gorm:"type:numeric(4,1);not null"`

	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	ServiceCode *string    `gorm:"type:varchar(40)"`

	IsDeleted bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Timesheet) TableName() string {
	return "timesheets"
}
