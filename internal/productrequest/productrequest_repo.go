package productrequest

import (
	"context"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=productrequest_repo.go -destination=mock/productrequest_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, pr *ProductRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductRequest, error)
	FindAll(ctx context.Context) ([]ProductRequest, error)
	FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]ProductRequest, error)
	Update(ctx context.Context, pr *ProductRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists the header and its line items together. gorm wraps the
// association insert in a single transaction.
func (r *repository) Create(ctx context.Context, pr *ProductRequest) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ProductRequest, error) {
	var pr ProductRequest
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&pr, "id = ?", id).Error
	return &pr, err
}

func (r *repository) FindAll(ctx context.Context) ([]ProductRequest, error) {
	var list []ProductRequest
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]ProductRequest, error) {
	var list []ProductRequest
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Preload("Items").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, pr *ProductRequest) error {
	return r.db.WithContext(ctx).Omit("Items").Save(pr).Error
}
