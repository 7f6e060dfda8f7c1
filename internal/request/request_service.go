package request

import (
	"context"
	"errors"
	"time"

	"sahl/internal/access"
	requesterrors "sahl/internal/request/errors"

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

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller Caller, req CreateRequestRequest) (*RequestResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*RequestResponse, error)
	GetAll(ctx context.Context, caller Caller) ([]RequestResponse, error)
	Review(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error)
	Approve(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error)
	Reject(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{repo: repo, logger: l}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) Create(ctx context.Context, caller Caller, req CreateRequestRequest) (*RequestResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, requesterrors.ErrInvalidBranchID
	}
	if caller.Role != access.RoleAdmin && branchID != caller.BranchID {
		return nil, requesterrors.ErrBranchMismatch
	}

	r := &Request{
		ID:       uuid.New(),
		BranchID: branchID,
		UserID:   caller.UserID,
		Type:     req.Type,
		Status:   StatusPending,
		Reason:   req.Reason,
	}

	switch req.Type {
	case TypeLeave:
		start, err1 := parseDate(req.StartDate)
		end, err2 := parseDate(req.EndDate)
		if err1 != nil || err2 != nil || start == nil || end == nil {
			return nil, requesterrors.ErrMissingTypeFields
		}
		if end.Before(*start) {
			return nil, requesterrors.ErrInvalidDateRange
		}
		r.StartDate, r.EndDate = start, end
	case TypeAdvance:
		if req.Amount <= 0 {
			return nil, requesterrors.ErrMissingTypeFields
		}
		amount := req.Amount
		r.Amount = &amount
	case TypeResignation:
		last, err := parseDate(req.LastWorkingDay)
		if err != nil || last == nil {
			return nil, requesterrors.ErrMissingTypeFields
		}
		r.LastWorkingDay = last
	case TypeOvertime:
		date, err := parseDate(req.OvertimeDate)
		if err != nil || date == nil || req.OvertimeHours <= 0 {
			return nil, requesterrors.ErrMissingTypeFields
		}
		hours := req.OvertimeHours
		r.OvertimeDate = date
		r.OvertimeHours = &hours
	default:
		return nil, requesterrors.ErrInvalidType
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Error("create request failed",
			zap.String("branch_id", branchID.String()),
			zap.String("type", req.Type),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("request created",
		zap.String("request_id", r.ID.String()),
		zap.String("type", r.Type),
		zap.String("branch_id", r.BranchID.String()),
	)

	resp := mapToResponse(r)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, caller Caller, id string) (*RequestResponse, error) {
	r, err := s.findVisible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(r)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, caller Caller) ([]RequestResponse, error) {
	var (
		list []Request
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

	resp := make([]RequestResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapToResponse(&list[i]))
	}
	return resp, nil
}

func (s *service) Review(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error) {
	return s.transition(ctx, caller, id, StatusInReview, input.AdminNote)
}

func (s *service) Approve(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error) {
	return s.transition(ctx, caller, id, StatusApproved, input.AdminNote)
}

func (s *service) Reject(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error) {
	return s.transition(ctx, caller, id, StatusRejected, input.AdminNote)
}

// transition applies the status machine. Only admins may review, and a
// terminal request never changes again.
func (s *service) transition(ctx context.Context, caller Caller, id, to, note string) (*RequestResponse, error) {
	if caller.Role != access.RoleAdmin {
		return nil, requesterrors.ErrReviewForbidden
	}

	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}

	r, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		return nil, err
	}

	if !isAllowedStatusTransition(r.Status, to) {
		return nil, requesterrors.ErrInvalidTransition
	}

	now := time.Now()
	reviewer := caller.UserID
	r.Status = to
	r.ReviewedBy = &reviewer
	r.AdminNote = note
	r.ReviewedAt = &now

	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.Error("request transition failed",
			zap.String("request_id", r.ID.String()),
			zap.String("to", to),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("request status changed",
		zap.String("request_id", r.ID.String()),
		zap.String("status", to),
		zap.String("reviewed_by", reviewer.String()),
	)

	resp := mapToResponse(r)
	return &resp, nil
}

func (s *service) findVisible(ctx context.Context, caller Caller, id string) (*Request, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}

	r, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		return nil, err
	}

	if caller.Role != access.RoleAdmin && r.BranchID != caller.BranchID {
		return nil, requesterrors.ErrRequestNotFound
	}
	return r, nil
}
