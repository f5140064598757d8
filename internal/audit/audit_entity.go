package audit

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only: the application inserts and reads them,
// never updates or deletes.
type AuditLog struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID           uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	ActorUserID     *uuid.UUID `gorm:"column:actor_user_id;type:uuid"`
	ActorEmployeeID *uuid.UUID `gorm:"column:actor_employee_id;type:uuid"`
	Action          string     `gorm:"column:action;type:varchar(100);not null"`
	EntityType      string     `gorm:"column:entity_type;type:varchar(50);not null"`
	EntityID        *uuid.UUID `gorm:"column:entity_id;type:uuid"`
	IP              *string    `gorm:"column:ip;type:inet"`
	UserAgent       *string    `gorm:"column:user_agent;type:text"`
	Metadata        []byte     `gorm:"column:metadata;type:jsonb"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
