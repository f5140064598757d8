package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID             uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	UserID            *uuid.UUID `gorm:"column:user_id;type:uuid"`
	EmployeeCode      string     `gorm:"column:employee_code;type:varchar(50);not null"`
	FirstName         string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName          string     `gorm:"column:last_name;type:varchar(100);not null"`
	WorkEmail         string     `gorm:"column:work_email;type:varchar(255);not null"`
	PersonalEmail     *string    `gorm:"column:personal_email;type:varchar(255)"`
	Phone             *string    `gorm:"column:phone;type:varchar(50)"`
	JobTitle          *string    `gorm:"column:job_title;type:varchar(100)"`
	Department        *string    `gorm:"column:department;type:varchar(100)"`
	Location          *string    `gorm:"column:location;type:varchar(100)"`
	EmploymentType    string     `gorm:"column:employment_type;type:varchar(30);not null;default:FULL_TIME"`
	Status            string     `gorm:"column:status;type:varchar(20);not null;default:ACTIVE"`
	DateOfJoining     *time.Time `gorm:"column:date_of_joining;type:date"`
	ManagerEmployeeID *uuid.UUID `gorm:"column:manager_employee_id;type:uuid;index"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
