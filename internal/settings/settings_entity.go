package settings

import "time"

type Setting struct {
	Key       string `gorm:"primaryKey;type:varchar(80)"`
	Value     string `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time
}

func (Setting) TableName() string {
	return "settings"
}
