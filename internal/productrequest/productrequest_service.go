package productrequest

import (
	"context"
	"errors"
	"math"
	"time"

	"sahl/internal/access"
	productrequesterrors "sahl/internal/productrequest/errors"

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

//go:generate mockgen -source=productrequest_service.go -destination=mock/productrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller Caller, req CreateProductRequestRequest) (*ProductRequestResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*ProductRequestResponse, error)
	GetAll(ctx context.Context, caller Caller) ([]ProductRequestResponse, error)
	Review(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error)
	Approve(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error)
	Reject(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("productrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("productrequest.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, caller Caller, req CreateProductRequestRequest) (*ProductRequestResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, productrequesterrors.ErrInvalidBranchID
	}
	if caller.Role != access.RoleAdmin && branchID != caller.BranchID {
		return nil, productrequesterrors.ErrBranchMismatch
	}

	// Each line_total must equal qty*unit_price, and the aggregate must
	// equal the sum of lines.
	var sum float64
	for _, it := range req.Items {
		if math.Abs(it.Quantity*it.UnitPrice-it.LineTotal) > amountTolerance {
			return nil, productrequesterrors.ErrLineTotalMismatch
		}
		sum += it.LineTotal
	}
	if math.Abs(sum-req.TotalAmount) > amountTolerance {
		return nil, productrequesterrors.ErrTotalMismatch
	}

	pr := &ProductRequest{
		ID:          uuid.New(),
		BranchID:    branchID,
		RequestedBy: caller.UserID,
		Status:      StatusPending,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	for _, it := range req.Items {
		pr.Items = append(pr.Items, ProductRequestItem{
			ID:               uuid.New(),
			ProductRequestID: pr.ID,
			ProductName:      it.ProductName,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			LineTotal:        it.LineTotal,
		})
	}

	if err := s.repo.Create(ctx, pr); err != nil {
		s.logger.Error("create product request failed",
			zap.String("branch_id", branchID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("product request created",
		zap.String("product_request_id", pr.ID.String()),
		zap.String("branch_id", pr.BranchID.String()),
		zap.Float64("total_amount", pr.TotalAmount),
		zap.Int("items", len(pr.Items)),
	)

	resp := mapToResponse(pr)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, caller Caller, id string) (*ProductRequestResponse, error) {
	pr, err := s.findVisible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(pr)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, caller Caller) ([]ProductRequestResponse, error) {
	var (
		list []ProductRequest
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

	resp := make([]ProductRequestResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapToResponse(&list[i]))
	}
	return resp, nil
}

func (s *service) Review(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error) {
	return s.transition(ctx, caller, id, StatusInReview, input.AdminNote)
}

func (s *service) Approve(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error) {
	return s.transition(ctx, caller, id, StatusApproved, input.AdminNote)
}

func (s *service) Reject(ctx context.Context, caller Caller, id string, input ReviewProductRequestRequest) (*ProductRequestResponse, error) {
	return s.transition(ctx, caller, id, StatusRejected, input.AdminNote)
}

func (s *service) transition(ctx context.Context, caller Caller, id, to, note string) (*ProductRequestResponse, error) {
	if caller.Role != access.RoleAdmin {
		return nil, productrequesterrors.ErrReviewForbidden
	}

	prID, err := uuid.Parse(id)
	if err != nil {
		return nil, productrequesterrors.ErrInvalidProductRequestID
	}

	pr, err := s.repo.FindByID(ctx, prID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productrequesterrors.ErrProductRequestNotFound
		}
		return nil, err
	}

	if !isAllowedStatusTransition(pr.Status, to) {
		return nil, productrequesterrors.ErrInvalidTransition
	}

	now := time.Now()
	reviewer := caller.UserID
	pr.Status = to
	pr.ReviewedBy = &reviewer
	pr.AdminNote = note
	pr.ReviewedAt = &now

	if err := s.repo.Update(ctx, pr); err != nil {
		s.logger.Error("product request transition failed",
			zap.String("product_request_id", pr.ID.String()),
			zap.String("to", to),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("product request status changed",
		zap.String("product_request_id", pr.ID.String()),
		zap.String("status", to),
		zap.String("reviewed_by", reviewer.String()),
	)

	resp := mapToResponse(pr)
	return &resp, nil
}

func (s *service) findVisible(ctx context.Context, caller Caller, id string) (*ProductRequest, error) {
	prID, err := uuid.Parse(id)
	if err != nil {
		return nil, productrequesterrors.ErrInvalidProductRequestID
	}

	pr, err := s.repo.FindByID(ctx, prID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productrequesterrors.ErrProductRequestNotFound
		}
		return nil, err
	}

	if caller.Role != access.RoleAdmin && pr.BranchID != caller.BranchID {
		return nil, productrequesterrors.ErrProductRequestNotFound
	}
	return pr, nil
}
