package bonus

import (
	"context"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	CreateRule(ctx context.Context, rule *BonusRule) error
	FindRuleByID(ctx context.Context, id uuid.UUID) (*BonusRule, error)
	FindRulesByBranch(ctx context.Context, branchID uuid.UUID) ([]BonusRule, error)
	UpdateRule(ctx context.Context, rule *BonusRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRule(ctx context.Context, rule *BonusRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) FindRuleByID(ctx context.Context, id uuid.UUID) (*BonusRule, error) {
	var rule BonusRule
	err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error
	return &rule, err
}

func (r *repository) FindRulesByBranch(ctx context.Context, branchID uuid.UUID) ([]BonusRule, error) {
	var rules []BonusRule
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Order("weekly_threshold DESC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) UpdateRule(ctx context.Context, rule *BonusRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&BonusRule{}, "id = ?", id).Error
}
