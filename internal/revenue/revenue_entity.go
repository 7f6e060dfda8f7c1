package revenue

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Revenue struct {
	ID                 uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	DocumentNo         string                `gorm:"column:document_no;type:varchar(32);not null;uniqueIndex:idx_revenues_branch_doc,priority:2"`
	BranchID           uuid.UUID             `gorm:"column:branch_id;type:uuid;not null;uniqueIndex:idx_revenues_branch_doc,priority:1;index"`
	Date               time.Time             `gorm:"column:date;type:date;not null;index"`
	Amount             float64               `gorm:"column:amount;type:numeric(14,2);not null"`
	Discount           float64               `gorm:"column:discount;type:numeric(14,2);not null;default:0"`
	TotalAfterDiscount float64               `gorm:"column:total_after_discount;type:numeric(14,2);not null"`
	CashAmount         float64               `gorm:"column:cash_amount;type:numeric(14,2);not null;default:0"`
	NetworkAmount      float64               `gorm:"column:network_amount;type:numeric(14,2);not null;default:0"`
	MismatchReason     string                `gorm:"column:mismatch_reason;type:text"`
	CreatedBy          uuid.UUID             `gorm:"column:created_by;type:uuid;not null"`
	Contributions      []RevenueContribution `gorm:"foreignKey:RevenueID"`
	CreatedAt          time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time             `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt          gorm.DeletedAt        `gorm:"column:deleted_at;index"`
}

func (Revenue) TableName() string {
	return "revenues"
}

type RevenueContribution struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	RevenueID    uuid.UUID `gorm:"column:revenue_id;type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255);not null"`
	Amount       float64   `gorm:"column:amount;type:numeric(14,2);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (RevenueContribution) TableName() string {
	return "revenue_contributions"
}
