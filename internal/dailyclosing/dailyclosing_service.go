package dailyclosing

import (
	"context"
	"errors"
	"time"

	"sahl/internal/access"
	dailyclosingerrors "sahl/internal/dailyclosing/errors"
	"sahl/internal/revenue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Caller identifies who is asking, so branch isolation can be applied.
type Caller struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
	Role     string
}

// RevenueTotals reads the day's revenue aggregates for one branch.
type RevenueTotals interface {
	SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (revenue.DailyTotals, error)
}

// ExpenseTotals reads the day's expense total for one branch.
type ExpenseTotals interface {
	SumByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) (float64, error)
}

//go:generate mockgen -source=dailyclosing_service.go -destination=mock/dailyclosing_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller Caller, req CreateClosingRequest) (*ClosingResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*ClosingResponse, error)
	GetAll(ctx context.Context, caller Caller) ([]ClosingResponse, error)
	Recompute(ctx context.Context, branchID uuid.UUID, date time.Time) error
}

type service struct {
	repo     Repository
	revenues RevenueTotals
	expenses ExpenseTotals
	logger   *zap.Logger
}

func NewService(repo Repository, revenues RevenueTotals, expenses ExpenseTotals, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailyclosing.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailyclosing.service")
	}
	return &service{
		repo:     repo,
		revenues: revenues,
		expenses: expenses,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, caller Caller, req CreateClosingRequest) (*ClosingResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, dailyclosingerrors.ErrInvalidBranchID
	}
	if caller.Role != access.RoleAdmin && branchID != caller.BranchID {
		return nil, dailyclosingerrors.ErrBranchMismatch
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, dailyclosingerrors.ErrInvalidDate
	}

	revTotals, err := s.revenues.SumByBranchAndDate(ctx, branchID, date)
	if err != nil {
		return nil, err
	}
	expTotal, err := s.expenses.SumByBranchAndDate(ctx, branchID, date)
	if err != nil {
		return nil, err
	}

	closing := &DailyClosing{
		ID:             uuid.New(),
		BranchID:       branchID,
		Date:           date,
		TotalRevenue:   revTotals.Total,
		CashRevenue:    revTotals.Cash,
		NetworkRevenue: revTotals.Network,
		TotalExpense:   expTotal,
		Net:            revTotals.Total - expTotal,
		ActualCash:     req.ActualCash,
		BankStatement:  req.BankStatement,
		CashDifference: req.ActualCash - revTotals.Cash,
		Notes:          req.Notes,
		CreatedBy:      caller.UserID,
	}

	if err := s.repo.Create(ctx, closing); err != nil {
		if isUniqueViolation(err) {
			return nil, dailyclosingerrors.ErrDuplicateClosing
		}
		s.logger.Error("create daily closing failed",
			zap.String("branch_id", branchID.String()),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("daily closing created",
		zap.String("closing_id", closing.ID.String()),
		zap.String("branch_id", closing.BranchID.String()),
		zap.String("date", req.Date),
		zap.Float64("net", closing.Net),
	)

	resp := mapToResponse(closing)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, caller Caller, id string) (*ClosingResponse, error) {
	closingID, err := uuid.Parse(id)
	if err != nil {
		return nil, dailyclosingerrors.ErrInvalidClosingID
	}

	closing, err := s.repo.FindByID(ctx, closingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dailyclosingerrors.ErrClosingNotFound
		}
		return nil, err
	}

	if caller.Role != access.RoleAdmin && closing.BranchID != caller.BranchID {
		return nil, dailyclosingerrors.ErrClosingNotFound
	}

	resp := mapToResponse(closing)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, caller Caller) ([]ClosingResponse, error) {
	var (
		list []DailyClosing
		err  error
	)
	if caller.Role == access.RoleAdmin {
		list, err = s.repo.FindAll(ctx)
	} else {
		list, err = s.repo.FindAllByBranch(ctx, caller.BranchID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]ClosingResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapToResponse(&list[i]))
	}
	return resp, nil
}

// Recompute refreshes the computed side of an existing closing after a late
// revenue event. Days without a closing are skipped; the operator figures
// are left untouched.
func (s *service) Recompute(ctx context.Context, branchID uuid.UUID, date time.Time) error {
	closing, err := s.repo.FindByBranchAndDate(ctx, branchID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	revTotals, err := s.revenues.SumByBranchAndDate(ctx, branchID, date)
	if err != nil {
		return err
	}
	expTotal, err := s.expenses.SumByBranchAndDate(ctx, branchID, date)
	if err != nil {
		return err
	}

	closing.TotalRevenue = revTotals.Total
	closing.CashRevenue = revTotals.Cash
	closing.NetworkRevenue = revTotals.Network
	closing.TotalExpense = expTotal
	closing.Net = revTotals.Total - expTotal
	closing.CashDifference = closing.ActualCash - revTotals.Cash

	if err := s.repo.Update(ctx, closing); err != nil {
		return err
	}

	s.logger.Info("daily closing recomputed",
		zap.String("closing_id", closing.ID.String()),
		zap.String("branch_id", branchID.String()),
		zap.String("date", date.Format("2006-01-02")),
	)
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
