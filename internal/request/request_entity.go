package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeLeave       = "LEAVE"
	TypeAdvance     = "ADVANCE"
	TypeResignation = "RESIGNATION"
	TypeOvertime    = "OVERTIME"
)

const (
	StatusPending  = "PENDING"
	StatusInReview = "IN_REVIEW"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Request struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;not null;index"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Type     string    `gorm:"column:type;type:varchar(20);not null"`
	Status   string    `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	Reason   string    `gorm:"column:reason;type:text"`

	// Type-specific fields. Only the ones matching Type are set.
	StartDate      *time.Time `gorm:"column:start_date;type:date"`
	EndDate        *time.Time `gorm:"column:end_date;type:date"`
	Amount         *float64   `gorm:"column:amount;type:numeric(14,2)"`
	LastWorkingDay *time.Time `gorm:"column:last_working_day;type:date"`
	OvertimeDate   *time.Time `gorm:"column:overtime_date;type:date"`
	OvertimeHours  *float64   `gorm:"column:overtime_hours;type:numeric(5,2)"`

	ReviewedBy *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	AdminNote  string     `gorm:"column:admin_note;type:text"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Request) TableName() string {
	return "requests"
}

// isAllowedStatusTransition encodes the review lifecycle. Approved and
// rejected requests never move again.
func isAllowedStatusTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusInReview || to == StatusApproved || to == StatusRejected
	case StatusInReview:
		return to == StatusApproved || to == StatusRejected
	default:
		return false
	}
}
