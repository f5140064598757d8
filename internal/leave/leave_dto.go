package leave

type ApplyRequest struct {
	LeaveTypeID string  `json:"leave_type_id" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Reason      *string `json:"reason"`
}

type DecideRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Comment  *string `json:"comment"`
}

type ListRequestsQuery struct {
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type LeaveRequestResponse struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"org_id"`
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	DecidedAt   *string `json:"decided_at"`
}

type BalanceResponse struct {
	LeaveTypeID string  `json:"leave_type_id"`
	Balance     float64 `json:"balance"`
}
