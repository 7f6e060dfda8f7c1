package bonus_test

import (
	"context"
	"testing"
	"time"

	"sahl/internal/access"
	"sahl/internal/bonus"
	bonuserrors "sahl/internal/bonus/errors"
	"sahl/internal/revenue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeBonusRepository struct {
	createRuleFn        func(ctx context.Context, rule *bonus.BonusRule) error
	findRuleByIDFn      func(ctx context.Context, id uuid.UUID) (*bonus.BonusRule, error)
	findRulesByBranchFn func(ctx context.Context, branchID uuid.UUID) ([]bonus.BonusRule, error)
	updateRuleFn        func(ctx context.Context, rule *bonus.BonusRule) error
	deleteRuleFn        func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBonusRepository) CreateRule(ctx context.Context, rule *bonus.BonusRule) error {
	if f.createRuleFn != nil {
		return f.createRuleFn(ctx, rule)
	}
	return nil
}

func (f *fakeBonusRepository) FindRuleByID(ctx context.Context, id uuid.UUID) (*bonus.BonusRule, error) {
	if f.findRuleByIDFn != nil {
		return f.findRuleByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBonusRepository) FindRulesByBranch(ctx context.Context, branchID uuid.UUID) ([]bonus.BonusRule, error) {
	if f.findRulesByBranchFn != nil {
		return f.findRulesByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeBonusRepository) UpdateRule(ctx context.Context, rule *bonus.BonusRule) error {
	if f.updateRuleFn != nil {
		return f.updateRuleFn(ctx, rule)
	}
	return nil
}

func (f *fakeBonusRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if f.deleteRuleFn != nil {
		return f.deleteRuleFn(ctx, id)
	}
	return nil
}

type fakeContributionSource struct {
	rows []revenue.ContributionByDay
}

func (f *fakeContributionSource) ContributionsByEmployeeAndMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]revenue.ContributionByDay, error) {
	return f.rows, nil
}

func day(year int, month time.Month, d int, amount float64) revenue.ContributionByDay {
	return revenue.ContributionByDay{
		Date:   time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
		Amount: amount,
	}
}

func TestBonusService_MonthlySummary(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	caller := bonus.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleManager}

	rules := []bonus.BonusRule{
		{ID: uuid.New(), BranchID: branchID, WeeklyThreshold: 70000, BonusAmount: 2000},
		{ID: uuid.New(), BranchID: branchID, WeeklyThreshold: 50000, BonusAmount: 1000},
	}

	t.Run("contributions in the first week earn the matching tier", func(t *testing.T) {
		repo := &fakeBonusRepository{
			findRulesByBranchFn: func(ctx context.Context, b uuid.UUID) ([]bonus.BonusRule, error) {
				assert.Equal(t, branchID, b)
				return rules, nil
			},
		}
		source := &fakeContributionSource{rows: []revenue.ContributionByDay{
			day(2026, time.May, 2, 30000),
			day(2026, time.May, 5, 25000),
		}}
		svc := bonus.NewService(repo, source, nil)

		empID := uuid.New()
		summary, err := svc.MonthlySummary(ctx, caller, empID.String(), 2026, 5)

		assert.NoError(t, err)
		assert.Equal(t, empID.String(), summary.EmployeeID)
		assert.Equal(t, 55000.0, summary.Windows[0].Income)
		assert.Equal(t, 1000.0, summary.Windows[0].Bonus)
		assert.Equal(t, 1000.0, summary.Total)
	})

	t.Run("same day contributions are summed before tier lookup", func(t *testing.T) {
		repo := &fakeBonusRepository{
			findRulesByBranchFn: func(ctx context.Context, b uuid.UUID) ([]bonus.BonusRule, error) {
				return rules, nil
			},
		}
		source := &fakeContributionSource{rows: []revenue.ContributionByDay{
			day(2026, time.May, 3, 40000),
			day(2026, time.May, 3, 35000),
		}}
		svc := bonus.NewService(repo, source, nil)

		summary, err := svc.MonthlySummary(ctx, caller, uuid.New().String(), 2026, 5)

		assert.NoError(t, err)
		assert.Equal(t, 75000.0, summary.Windows[0].Income)
		assert.Equal(t, 2000.0, summary.Windows[0].Bonus)
	})

	t.Run("month without contributions yields zero bonus", func(t *testing.T) {
		repo := &fakeBonusRepository{
			findRulesByBranchFn: func(ctx context.Context, b uuid.UUID) ([]bonus.BonusRule, error) {
				return rules, nil
			},
		}
		svc := bonus.NewService(repo, &fakeContributionSource{}, nil)

		summary, err := svc.MonthlySummary(ctx, caller, uuid.New().String(), 2026, 5)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.Total)
	})

	t.Run("period bounds are validated", func(t *testing.T) {
		svc := bonus.NewService(&fakeBonusRepository{}, &fakeContributionSource{}, nil)

		_, err := svc.MonthlySummary(ctx, caller, uuid.New().String(), 2026, 13)
		assert.ErrorIs(t, err, bonuserrors.ErrInvalidPeriod)

		_, err = svc.MonthlySummary(ctx, caller, "not-a-uuid", 2026, 5)
		assert.ErrorIs(t, err, bonuserrors.ErrInvalidEmployeeID)
	})
}

func TestBonusService_CreateRule(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	admin := bonus.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleAdmin}

	t.Run("duplicate threshold maps to a conflict", func(t *testing.T) {
		repo := &fakeBonusRepository{
			createRuleFn: func(ctx context.Context, rule *bonus.BonusRule) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bonus_rules_branch_threshold"}
			},
		}
		svc := bonus.NewService(repo, &fakeContributionSource{}, nil)

		_, err := svc.CreateRule(ctx, admin, bonus.CreateRuleRequest{
			BranchID:        branchID.String(),
			WeeklyThreshold: 50000,
			BonusAmount:     1000,
		})

		assert.ErrorIs(t, err, bonuserrors.ErrDuplicateThreshold)
	})

	t.Run("valid rule is stored", func(t *testing.T) {
		var created *bonus.BonusRule
		repo := &fakeBonusRepository{
			createRuleFn: func(ctx context.Context, rule *bonus.BonusRule) error {
				created = rule
				return nil
			},
		}
		svc := bonus.NewService(repo, &fakeContributionSource{}, nil)

		resp, err := svc.CreateRule(ctx, admin, bonus.CreateRuleRequest{
			BranchID:        branchID.String(),
			WeeklyThreshold: 50000,
			BonusAmount:     1000,
		})

		assert.NoError(t, err)
		assert.Equal(t, branchID, created.BranchID)
		assert.Equal(t, 1000.0, resp.BonusAmount)
	})
}
