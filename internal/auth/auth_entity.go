package auth

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug   string    `gorm:"column:slug;type:varchar(100);uniqueIndex;not null"`
	Status string    `gorm:"column:status;type:varchar(20);not null;default:active"`
}

func (Organization) TableName() string {
	return "organizations"
}

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID        uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	Email        string     `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at;type:timestamptz"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
