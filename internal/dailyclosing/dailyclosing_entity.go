package dailyclosing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyClosing reconciles one branch day: computed figures from the ledgers
// against what the operator actually counted.
type DailyClosing struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BranchID       uuid.UUID `gorm:"column:branch_id;type:uuid;not null;uniqueIndex:idx_daily_closings_branch_date,priority:1"`
	Date           time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_daily_closings_branch_date,priority:2"`
	TotalRevenue   float64   `gorm:"column:total_revenue;type:numeric(14,2);not null"`
	CashRevenue    float64   `gorm:"column:cash_revenue;type:numeric(14,2);not null"`
	NetworkRevenue float64   `gorm:"column:network_revenue;type:numeric(14,2);not null"`
	TotalExpense   float64   `gorm:"column:total_expense;type:numeric(14,2);not null"`
	Net            float64   `gorm:"column:net;type:numeric(14,2);not null"`

	ActualCash     float64 `gorm:"column:actual_cash;type:numeric(14,2);not null"`
	BankStatement  float64 `gorm:"column:bank_statement;type:numeric(14,2);not null"`
	CashDifference float64 `gorm:"column:cash_difference;type:numeric(14,2);not null"`
	Notes          string  `gorm:"column:notes;type:text"`

	CreatedBy uuid.UUID      `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (DailyClosing) TableName() string {
	return "daily_closings"
}
