package dailyclosing_test

import (
	"context"
	"testing"
	"time"

	"sahl/internal/access"
	"sahl/internal/dailyclosing"
	dailyclosingerrors "sahl/internal/dailyclosing/errors"
	"sahl/internal/revenue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeClosingRepository struct {
	createFn              func(ctx context.Context, c *dailyclosing.DailyClosing) error
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*dailyclosing.DailyClosing, error)
	findByBranchAndDateFn func(ctx context.Context, branchID uuid.UUID, date time.Time) (*dailyclosing.DailyClosing, error)
	findAllFn             func(ctx context.Context) ([]dailyclosing.DailyClosing, error)
	findAllByBranchFn     func(ctx context.Context, branchID uuid.UUID) ([]dailyclosing.DailyClosing, error)
	updateFn              func(ctx context.Context, c *dailyclosing.DailyClosing) error
}

func (f *fakeClosingRepository) Create(ctx context.Context, c *dailyclosing.DailyClosing) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeClosingRepository) FindByID(ctx context.Context, id uuid.UUID) (*dailyclosing.DailyClosing, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClosingRepository) FindByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (*dailyclosing.DailyClosing, error) {
	if f.findByBranchAndDateFn != nil {
		return f.findByBranchAndDateFn(ctx, branchID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClosingRepository) FindAll(ctx context.Context) ([]dailyclosing.DailyClosing, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeClosingRepository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]dailyclosing.DailyClosing, error) {
	if f.findAllByBranchFn != nil {
		return f.findAllByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeClosingRepository) Update(ctx context.Context, c *dailyclosing.DailyClosing) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

type fakeRevenueTotals struct {
	totals revenue.DailyTotals
}

func (f *fakeRevenueTotals) SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (revenue.DailyTotals, error) {
	return f.totals, nil
}

type fakeExpenseTotals struct {
	total float64
}

func (f *fakeExpenseTotals) SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (float64, error) {
	return f.total, nil
}

func TestDailyClosingService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	caller := dailyclosing.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleManager}

	t.Run("computes net and cash difference from the ledgers", func(t *testing.T) {
		repo := &fakeClosingRepository{}
		revs := &fakeRevenueTotals{totals: revenue.DailyTotals{Total: 5000, Cash: 3000, Network: 2000}}
		exps := &fakeExpenseTotals{total: 1200}
		svc := dailyclosing.NewService(repo, revs, exps)

		var created *dailyclosing.DailyClosing
		repo.createFn = func(ctx context.Context, c *dailyclosing.DailyClosing) error {
			created = c
			return nil
		}

		resp, err := svc.Create(ctx, caller, dailyclosing.CreateClosingRequest{
			BranchID:      branchID.String(),
			Date:          "2026-05-10",
			ActualCash:    2950,
			BankStatement: 2000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 5000.0, created.TotalRevenue)
		assert.Equal(t, 1200.0, created.TotalExpense)
		assert.Equal(t, 3800.0, created.Net)
		assert.Equal(t, -50.0, created.CashDifference)
		assert.Equal(t, 3800.0, resp.Net)
	})

	t.Run("duplicate branch and date maps to a conflict", func(t *testing.T) {
		repo := &fakeClosingRepository{}
		svc := dailyclosing.NewService(repo, &fakeRevenueTotals{}, &fakeExpenseTotals{})

		repo.createFn = func(ctx context.Context, c *dailyclosing.DailyClosing) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_daily_closings_branch_date"}
		}

		_, err := svc.Create(ctx, caller, dailyclosing.CreateClosingRequest{
			BranchID: branchID.String(),
			Date:     "2026-05-10",
		})

		assert.ErrorIs(t, err, dailyclosingerrors.ErrDuplicateClosing)
	})

	t.Run("non admin cannot close another branch", func(t *testing.T) {
		repo := &fakeClosingRepository{}
		svc := dailyclosing.NewService(repo, &fakeRevenueTotals{}, &fakeExpenseTotals{})

		_, err := svc.Create(ctx, caller, dailyclosing.CreateClosingRequest{
			BranchID: uuid.New().String(),
			Date:     "2026-05-10",
		})

		assert.ErrorIs(t, err, dailyclosingerrors.ErrBranchMismatch)
	})
}

func TestDailyClosingService_Recompute(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	date := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("refreshes computed figures and keeps operator input", func(t *testing.T) {
		repo := &fakeClosingRepository{}
		revs := &fakeRevenueTotals{totals: revenue.DailyTotals{Total: 6000, Cash: 3500, Network: 2500}}
		exps := &fakeExpenseTotals{total: 1000}
		svc := dailyclosing.NewService(repo, revs, exps)

		existing := &dailyclosing.DailyClosing{
			ID:             uuid.New(),
			BranchID:       branchID,
			Date:           date,
			TotalRevenue:   5000,
			CashRevenue:    3000,
			ActualCash:     2950,
			BankStatement:  2000,
			CashDifference: -50,
		}
		repo.findByBranchAndDateFn = func(ctx context.Context, b uuid.UUID, d time.Time) (*dailyclosing.DailyClosing, error) {
			return existing, nil
		}

		var updated *dailyclosing.DailyClosing
		repo.updateFn = func(ctx context.Context, c *dailyclosing.DailyClosing) error {
			updated = c
			return nil
		}

		err := svc.Recompute(ctx, branchID, date)

		assert.NoError(t, err)
		assert.Equal(t, 6000.0, updated.TotalRevenue)
		assert.Equal(t, 5000.0, updated.Net)
		assert.Equal(t, 2950.0, updated.ActualCash)
		assert.Equal(t, 2950.0-3500.0, updated.CashDifference)
	})

	t.Run("day without a closing is a no-op", func(t *testing.T) {
		repo := &fakeClosingRepository{}
		svc := dailyclosing.NewService(repo, &fakeRevenueTotals{}, &fakeExpenseTotals{})

		updateCalled := false
		repo.updateFn = func(ctx context.Context, c *dailyclosing.DailyClosing) error {
			updateCalled = true
			return nil
		}

		err := svc.Recompute(ctx, branchID, date)

		assert.NoError(t, err)
		assert.False(t, updateCalled)
	})
}
