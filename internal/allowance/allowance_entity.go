package allowance

import (
	"time"

	"github.com/google/uuid"
)

const (
	TripStatusPending  = "pending"
	TripStatusApproved = "approved"
	TripStatusRejected = "rejected"
)

type BusinessTrip struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_trip_user_date"`

	TripDate    time.Time `gorm:"type:date;not null;index:idx_trip_user_date"`
	Destination string    `gorm:"type:varchar(120)"`
	DistanceKm  float64   `gorm:"type:numeric(6,1);not null;default:0"`

	Status    string `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsDeleted bool   `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BusinessTrip) TableName() string {
	return "business_trips"
}
