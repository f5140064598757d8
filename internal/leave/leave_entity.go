package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveType struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID            uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Code             string    `gorm:"size:32" json:"code"`
	RequiresApproval bool      `gorm:"not null;default:true" json:"requires_approval"`
	CreatedAt        time.Time `json:"created_at"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	LeaveTypeID uuid.UUID  `gorm:"type:uuid;not null" json:"leave_type_id"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time  `gorm:"type:date;not null" json:"end_date"`
	Reason      *string    `json:"reason"`
	Status      string     `gorm:"size:16;not null;default:pending" json:"status"`
	RequestedAt time.Time  `gorm:"not null" json:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveApproval is an append-only decision record. Rows are never updated
// once written.
type LeaveApproval struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID              uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	LeaveRequestID     uuid.UUID `gorm:"type:uuid;not null;index" json:"leave_request_id"`
	ApproverEmployeeID uuid.UUID `gorm:"type:uuid;not null" json:"approver_employee_id"`
	Decision           string    `gorm:"size:16;not null" json:"decision"`
	Comment            *string   `json:"comment"`
	DecidedAt          time.Time `gorm:"not null" json:"decided_at"`
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}

type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null" json:"leave_type_id"`
	Balance     float64   `gorm:"not null;default:0" json:"balance"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
