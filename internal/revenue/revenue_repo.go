package revenue

import (
	"context"
	"database/sql"
	"time"

	"sahl/internal/branchscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyTotals is the aggregate the daily closing module reads.
type DailyTotals struct {
	Total   float64
	Cash    float64
	Network float64
}

// ContributionByDay pairs a contribution amount with the revenue date it
// belongs to. The bonus calculator buckets these by day of month.
type ContributionByDay struct {
	Date   time.Time `gorm:"column:date"`
	Amount float64   `gorm:"column:amount"`
}

//go:generate mockgen -source=revenue_repo.go -destination=mock/revenue_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rev *Revenue) error
	FindByID(ctx context.Context, id uuid.UUID) (*Revenue, error)
	FindAll(ctx context.Context) ([]Revenue, error)
	FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Revenue, error)
	SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (DailyTotals, error)
	ContributionsByEmployeeAndMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]ContributionByDay, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rev *Revenue) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(rev).Error
	}

	// Inside a transaction the header and its contribution rows commit or
	// roll back together with the outbox event.
	const insertRevenue = `
        INSERT INTO revenues (
            id, document_no, branch_id, date, amount, discount,
            total_after_discount, cash_amount, network_amount,
            mismatch_reason, created_by, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
    `
	if _, err := r.tx.ExecContext(
		ctx, insertRevenue,
		rev.ID, rev.DocumentNo, rev.BranchID, rev.Date.Format("2006-01-02"),
		rev.Amount, rev.Discount, rev.TotalAfterDiscount,
		rev.CashAmount, rev.NetworkAmount, rev.MismatchReason, rev.CreatedBy,
	); err != nil {
		return err
	}

	const insertContribution = `
        INSERT INTO revenue_contributions (
            id, revenue_id, employee_id, employee_name, amount, created_at
        ) VALUES ($1, $2, $3, $4, $5, NOW())
    `
	for _, c := range rev.Contributions {
		if _, err := r.tx.ExecContext(
			ctx, insertContribution,
			c.ID, rev.ID, c.EmployeeID, c.EmployeeName, c.Amount,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Revenue, error) {
	var rev Revenue
	err := r.db.WithContext(ctx).
		Preload("Contributions").
		First(&rev, "id = ?", id).Error
	return &rev, err
}

func (r *repository) FindAll(ctx context.Context) ([]Revenue, error) {
	var list []Revenue
	err := r.db.WithContext(ctx).
		Preload("Contributions").
		Order("date DESC, document_no DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]Revenue, error) {
	var list []Revenue
	err := r.db.WithContext(ctx).
		Scopes(branchscope.Scope(branchID.String())).
		Preload("Contributions").
		Order("date DESC, document_no DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (DailyTotals, error) {
	var totals DailyTotals
	err := r.db.WithContext(ctx).
		Model(&Revenue{}).
		Scopes(branchscope.Scope(branchID.String())).
		Where("date = ?", date.Format("2006-01-02")).
		Select(
			"COALESCE(SUM(total_after_discount), 0) AS total, " +
				"COALESCE(SUM(cash_amount), 0) AS cash, " +
				"COALESCE(SUM(network_amount), 0) AS network",
		).
		Scan(&totals).Error
	return totals, err
}

func (r *repository) ContributionsByEmployeeAndMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]ContributionByDay, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var list []ContributionByDay
	err := r.db.WithContext(ctx).
		Model(&RevenueContribution{}).
		Joins("JOIN revenues ON revenues.id = revenue_contributions.revenue_id").
		Where("revenue_contributions.employee_id = ?", employeeID).
		Where("revenues.date >= ? AND revenues.date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("revenues.deleted_at IS NULL").
		Select("revenues.date AS date, revenue_contributions.amount AS amount").
		Scan(&list).Error
	return list, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Revenue{}, "id = ?", id).Error
}
