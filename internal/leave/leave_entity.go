package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSick         = "sick"
	TypePersonal     = "personal"
	TypeMenstrual    = "menstrual"
	TypeCompensatory = "compensatory"
	TypeOthers       = "others"

	UnitDay  = "day"
	UnitHour = "hour"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_user_range"`
	LeaveType string    `gorm:"type:varchar(20);not null"`

	// Unit day dikonversi ke jam (x8) sebelum aritmetika apa pun.
	Unit   string  `gorm:"type:varchar(10);not null"`
	Amount float64 `gorm:"type:numeric(6,1);not null"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_user_range"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_user_range"`

	Status    string `gorm:"type:varchar(20);not null;default:'pending';index"`
	Reason    string `gorm:"type:text"`
	IsDeleted bool   `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// HoursEquivalent mengubah amount ke jam; unit day dihitung 8 jam per hari.
func (l LeaveRequest) HoursEquivalent() float64 {
	if l.Unit == UnitDay {
		return l.Amount * 8
	}
	return l.Amount
}
