package payroll

import (
	"time"

	"github.com/google/uuid"
)

type PayrollCycle struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time  `gorm:"type:date;not null" json:"end_date"`
	Status    string     `gorm:"size:32;not null;default:draft" json:"status"`
	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (PayrollCycle) TableName() string {
	return "payroll_cycles"
}
