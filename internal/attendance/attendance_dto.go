package attendance

type ClockInRequest struct {
	WorkMode string  `json:"work_mode"`
	Source   string  `json:"source"`
	Notes    *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type ListSessionsQuery struct {
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	EmployeeID string `form:"employee_id"`
}

type SessionResponse struct {
	ID            string  `json:"id"`
	OrgID         string  `json:"org_id"`
	EmployeeID    string  `json:"employee_id"`
	SessionDate   string  `json:"session_date"`
	ClockInAt     *string `json:"clock_in_at"`
	ClockOutAt    *string `json:"clock_out_at"`
	MinutesWorked int     `json:"minutes_worked"`
	WorkMode      string  `json:"work_mode"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes"`
}
