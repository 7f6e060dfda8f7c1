package expense

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID    uuid.UUID      `gorm:"column:branch_id;type:uuid;not null;index"`
	Date        time.Time      `gorm:"column:date;type:date;not null;index"`
	Category    string         `gorm:"column:category;type:varchar(100);not null"`
	Amount      float64        `gorm:"column:amount;type:numeric(14,2);not null"`
	Description string         `gorm:"column:description;type:text"`
	CreatedBy   uuid.UUID      `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Expense) TableName() string {
	return "expenses"
}
