package dailyclosing

import (
	"context"
	"time"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=dailyclosing_repo.go -destination=mock/dailyclosing_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, closing *DailyClosing) error
	FindByID(ctx context.Context, id uuid.UUID) (*DailyClosing, error)
	FindByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (*DailyClosing, error)
	FindAll(ctx context.Context) ([]DailyClosing, error)
	FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]DailyClosing, error)
	Update(ctx context.Context, closing *DailyClosing) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, closing *DailyClosing) error {
	return r.db.WithContext(ctx).Create(closing).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*DailyClosing, error) {
	var closing DailyClosing
	err := r.db.WithContext(ctx).First(&closing, "id = ?", id).Error
	return &closing, err
}

func (r *repository) FindByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (*DailyClosing, error) {
	var closing DailyClosing
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		First(&closing, "date = ?", date.Format("2006-01-02")).Error
	return &closing, err
}

func (r *repository) FindAll(ctx context.Context) ([]DailyClosing, error) {
	var list []DailyClosing
	err := r.db.WithContext(ctx).Order("date DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]DailyClosing, error) {
	var list []DailyClosing
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, closing *DailyClosing) error {
	return r.db.WithContext(ctx).Save(closing).Error
}
