package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	HolidayDate time.Time `gorm:"type:date;not null" json:"holiday_date"`
	IsOptional  bool      `gorm:"not null;default:false" json:"is_optional"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
