package employee

type CreateEmployeeRequest struct {
	EmployeeCode      string  `json:"employee_code"`
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name" binding:"required"`
	WorkEmail         string  `json:"work_email" binding:"required,email"`
	PersonalEmail     *string `json:"personal_email"`
	Phone             *string `json:"phone"`
	JobTitle          *string `json:"job_title"`
	Department        *string `json:"department"`
	Location          *string `json:"location"`
	EmploymentType    string  `json:"employment_type"`
	Status            string  `json:"status"`
	DateOfJoining     *string `json:"date_of_joining"`
	ManagerEmployeeID *string `json:"manager_employee_id"`
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	OrgID             string  `json:"org_id"`
	UserID            *string `json:"user_id,omitempty"`
	EmployeeCode      string  `json:"employee_code"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	WorkEmail         string  `json:"work_email"`
	PersonalEmail     *string `json:"personal_email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	JobTitle          *string `json:"job_title,omitempty"`
	Department        *string `json:"department,omitempty"`
	Location          *string `json:"location,omitempty"`
	EmploymentType    string  `json:"employment_type"`
	Status            string  `json:"status"`
	DateOfJoining     *string `json:"date_of_joining,omitempty"`
	ManagerEmployeeID *string `json:"manager_employee_id,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}
