package request

import (
	"context"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	FindAll(ctx context.Context) ([]Request, error)
	FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Request, error)
	Update(ctx context.Context, req *Request) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var list []Request
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Request, error) {
	var list []Request
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}
