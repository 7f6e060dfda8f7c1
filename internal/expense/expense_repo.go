package expense

import (
	"context"
	"time"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context) ([]Expense, error)
	FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Expense, error)
	SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (float64, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context) ([]Expense, error) {
	var list []Expense
	err := r.db.WithContext(ctx).Order("date DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Expense, error) {
	var list []Expense
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Expense{}).
		Scopes(branchscope.Scope(branchID.String())).
		Where("date = ?", date.Format("2006-01-02")).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id).Error
}
