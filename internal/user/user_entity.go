package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;not null;index"`
	Name     string    `gorm:"column:name;type:varchar(255);not null"`
	Email    string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password string    `gorm:"column:password;type:text;not null"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	IsActive bool      `gorm:"column:is_active;default:true"`

	Permissions []UserPermission `gorm:"foreignKey:UserID"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// UserPermission is one (resource, action) grant; the access enforcer loads
// these per branch.
type UserPermission struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Resource string    `gorm:"column:resource;type:varchar(50);not null"`
	Action   string    `gorm:"column:action;type:varchar(30);not null"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}
