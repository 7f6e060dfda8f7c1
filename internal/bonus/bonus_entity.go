package bonus

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BonusRule maps a weekly income threshold to a payout. Rules are evaluated
// per branch, descending by threshold, first threshold <= income wins.
type BonusRule struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	BranchID        uuid.UUID      `gorm:"column:branch_id;type:uuid;not null;uniqueIndex:idx_bonus_rules_branch_threshold,priority:1"`
	WeeklyThreshold float64        `gorm:"column:weekly_threshold;type:numeric(14,2);not null;uniqueIndex:idx_bonus_rules_branch_threshold,priority:2"`
	BonusAmount     float64        `gorm:"column:bonus_amount;type:numeric(14,2);not null"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (BonusRule) TableName() string {
	return "bonus_rules"
}
