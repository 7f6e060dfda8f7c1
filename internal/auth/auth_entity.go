package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal projection of the users table the auth flow needs.
type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid"`
	Name     string    `gorm:"column:name"`
	Email    string    `gorm:"column:email"`
	Password string    `gorm:"column:password"`
	Role     string    `gorm:"column:role"`
	IsActive bool      `gorm:"column:is_active"`
}

func (User) TableName() string {
	return "users"
}

// LoginAttempt is an audit row written for every login, failed ones included.
type LoginAttempt struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"column:email;type:text;not null;index"`
	IP        string    `gorm:"column:ip;type:varchar(45)"`
	UserAgent string    `gorm:"column:user_agent;type:text"`
	Success   bool      `gorm:"column:success;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LoginAttempt) TableName() string {
	return "login_attempts"
}
