package expense

import (
	"context"
	"errors"
	"time"

	"sahl/internal/access"
	expenseerrors "sahl/internal/expense/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Caller identifies who is asking, so branch isolation can be applied.
type Caller struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
	Role     string
}

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller Caller, req CreateExpenseRequest) (*ExpenseResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*ExpenseResponse, error)
	GetAll(ctx context.Context, caller Caller) ([]ExpenseResponse, error)
	Update(ctx context.Context, caller Caller, id string, req UpdateExpenseRequest) (*ExpenseResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, caller Caller, req CreateExpenseRequest) (*ExpenseResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, expenseerrors.ErrInvalidBranchID
	}
	if caller.Role != access.RoleAdmin && branchID != caller.BranchID {
		return nil, expenseerrors.ErrBranchMismatch
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, expenseerrors.ErrInvalidDate
	}

	e := &Expense{
		ID:          uuid.New(),
		BranchID:    branchID,
		Date:        date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   caller.UserID,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create expense failed", zap.String("branch_id", branchID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("expense created",
		zap.String("expense_id", e.ID.String()),
		zap.String("branch_id", e.BranchID.String()),
		zap.Float64("amount", e.Amount),
	)

	resp := mapToResponse(e)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, caller Caller, id string) (*ExpenseResponse, error) {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return nil, expenseerrors.ErrInvalidExpenseID
	}

	e, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expenseerrors.ErrExpenseNotFound
		}
		return nil, err
	}

	if caller.Role != access.RoleAdmin && e.BranchID != caller.BranchID {
		return nil, expenseerrors.ErrExpenseNotFound
	}

	resp := mapToResponse(e)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, caller Caller) ([]ExpenseResponse, error) {
	var (
		list []Expense
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

	resp := make([]ExpenseResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapToResponse(&list[i]))
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, caller Caller, id string, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return nil, expenseerrors.ErrInvalidExpenseID
	}

	e, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expenseerrors.ErrExpenseNotFound
		}
		return nil, err
	}
	if caller.Role != access.RoleAdmin && e.BranchID != caller.BranchID {
		return nil, expenseerrors.ErrExpenseNotFound
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, expenseerrors.ErrInvalidDate
		}
		e.Date = date
	}
	if req.Category != "" {
		e.Category = req.Category
	}
	if req.Amount > 0 {
		e.Amount = req.Amount
	}
	if req.Description != "" {
		e.Description = req.Description
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	resp := mapToResponse(e)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, caller Caller, id string) error {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return expenseerrors.ErrInvalidExpenseID
	}

	e, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return expenseerrors.ErrExpenseNotFound
		}
		return err
	}
	if caller.Role != access.RoleAdmin && e.BranchID != caller.BranchID {
		return expenseerrors.ErrExpenseNotFound
	}

	return s.repo.Delete(ctx, expenseID)
}
