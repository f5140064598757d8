package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Session is one attendance row per employee per UTC calendar date. A
// session is open while clock_in_at is set and clock_out_at is not.
type Session struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	SessionDate   time.Time  `gorm:"type:date;not null" json:"session_date"`
	ClockInAt     *time.Time `json:"clock_in_at"`
	ClockOutAt    *time.Time `json:"clock_out_at"`
	MinutesWorked int        `gorm:"not null;default:0" json:"minutes_worked"`
	WorkMode      string     `gorm:"size:32" json:"work_mode"`
	Source        string     `gorm:"size:32" json:"source"`
	Notes         *string    `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Session) TableName() string {
	return "attendance_sessions"
}

func (s *Session) IsOpen() bool {
	return s.ClockInAt != nil && s.ClockOutAt == nil
}
