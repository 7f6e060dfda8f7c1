package productrequest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusInReview = "IN_REVIEW"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type ProductRequest struct {
	ID          uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	BranchID    uuid.UUID            `gorm:"column:branch_id;type:uuid;not null;index"`
	RequestedBy uuid.UUID            `gorm:"column:requested_by;type:uuid;not null;index"`
	Status      string               `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	TotalAmount float64              `gorm:"column:total_amount;type:numeric(14,2);not null"`
	Notes       string               `gorm:"column:notes;type:text"`
	Items       []ProductRequestItem `gorm:"foreignKey:ProductRequestID"`

	ReviewedBy *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	AdminNote  string     `gorm:"column:admin_note;type:text"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ProductRequest) TableName() string {
	return "product_requests"
}

type ProductRequestItem struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductRequestID uuid.UUID `gorm:"column:product_request_id;type:uuid;not null;index"`
	ProductName      string    `gorm:"column:product_name;type:varchar(255);not null"`
	Quantity         float64   `gorm:"column:quantity;type:numeric(12,2);not null"`
	UnitPrice        float64   `gorm:"column:unit_price;type:numeric(14,2);not null"`
	LineTotal        float64   `gorm:"column:line_total;type:numeric(14,2);not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProductRequestItem) TableName() string {
	return "product_request_items"
}

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
