package revenue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"sahl/internal/access"
	"sahl/internal/events"
	"sahl/internal/messaging/kafka"
	revenueerrors "sahl/internal/revenue/errors"
	"sahl/internal/shared/contextutil"
	"sahl/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// amountTolerance absorbs float rounding when comparing money sums.
const amountTolerance = 0.01

// Caller identifies who is asking, so branch isolation can be applied.
type Caller struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
	Role     string
}

//go:generate mockgen -source=revenue_service.go -destination=mock/revenue_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller Caller, req CreateRevenueRequest) (*RevenueResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*RevenueResponse, error)
	GetAll(ctx context.Context, caller Caller) ([]RevenueResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("revenue.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("revenue.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outbox,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, caller Caller, req CreateRevenueRequest) (*RevenueResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, revenueerrors.ErrInvalidBranchID
	}
	if caller.Role != access.RoleAdmin && branchID != caller.BranchID {
		return nil, revenueerrors.ErrBranchMismatch
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, revenueerrors.ErrInvalidDate
	}

	totalAfterDiscount := req.Amount - req.Discount

	var contributionSum float64
	for _, c := range req.Contributions {
		contributionSum += c.Amount
	}
	if math.Abs(contributionSum-totalAfterDiscount) > amountTolerance {
		return nil, revenueerrors.ErrContributionSumMismatch
	}

	paymentSum := req.CashAmount + req.NetworkAmount
	if math.Abs(paymentSum-totalAfterDiscount) > amountTolerance &&
		strings.TrimSpace(req.MismatchReason) == "" {
		return nil, revenueerrors.ErrMismatchReasonRequired
	}

	seq, err := s.counter.GetNextValue(ctx, branchID.String(), "revenue")
	if err != nil {
		s.logger.Error("document counter failed", zap.String("branch_id", branchID.String()), zap.Error(err))
		return nil, err
	}

	rev := &Revenue{
		ID:                 uuid.New(),
		DocumentNo:         fmt.Sprintf("REV-%d", seq),
		BranchID:           branchID,
		Date:               date,
		Amount:             req.Amount,
		Discount:           req.Discount,
		TotalAfterDiscount: totalAfterDiscount,
		CashAmount:         req.CashAmount,
		NetworkAmount:      req.NetworkAmount,
		MismatchReason:     strings.TrimSpace(req.MismatchReason),
		CreatedBy:          caller.UserID,
		CreatedAt:          time.Now(),
	}
	for _, c := range req.Contributions {
		employeeID, err := uuid.Parse(c.EmployeeID)
		if err != nil {
			return nil, revenueerrors.ErrInvalidEmployeeID
		}
		rev.Contributions = append(rev.Contributions, RevenueContribution{
			ID:           uuid.New(),
			RevenueID:    rev.ID,
			EmployeeID:   employeeID,
			EmployeeName: c.EmployeeName,
			Amount:       c.Amount,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rev); err != nil {
		s.logger.Error("create revenue failed",
			zap.String("branch_id", branchID.String()),
			zap.String("document_no", rev.DocumentNo),
			zap.Error(err),
		)
		return nil, err
	}

	event := events.RevenueRecordedEvent{
		EventType:   "revenue.recorded",
		RevenueID:   rev.ID.String(),
		BranchID:    rev.BranchID.String(),
		Date:        rev.Date.Format("2006-01-02"),
		TotalAmount: rev.TotalAfterDiscount,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "revenue",
		AggregateID:   rev.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RevenueRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("enqueue revenue event failed", zap.String("revenue_id", rev.ID.String()), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("revenue recorded",
		zap.String("revenue_id", rev.ID.String()),
		zap.String("document_no", rev.DocumentNo),
		zap.String("branch_id", rev.BranchID.String()),
		zap.Float64("total_after_discount", rev.TotalAfterDiscount),
	)

	resp := mapToResponse(rev)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, caller Caller, id string) (*RevenueResponse, error) {
	revenueID, err := uuid.Parse(id)
	if err != nil {
		return nil, revenueerrors.ErrInvalidRevenueID
	}

	rev, err := s.repo.FindByID(ctx, revenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, revenueerrors.ErrRevenueNotFound
		}
		return nil, err
	}

	if caller.Role != access.RoleAdmin && rev.BranchID != caller.BranchID {
		return nil, revenueerrors.ErrRevenueNotFound
	}

	resp := mapToResponse(rev)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, caller Caller) ([]RevenueResponse, error) {
	var (
		list []Revenue
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

	resp := make([]RevenueResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapToResponse(&list[i]))
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, caller Caller, id string) error {
	revenueID, err := uuid.Parse(id)
	if err != nil {
		return revenueerrors.ErrInvalidRevenueID
	}

	rev, err := s.repo.FindByID(ctx, revenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return revenueerrors.ErrRevenueNotFound
		}
		return err
	}
	if caller.Role != access.RoleAdmin && rev.BranchID != caller.BranchID {
		return revenueerrors.ErrRevenueNotFound
	}

	return s.repo.Delete(ctx, revenueID)
}
