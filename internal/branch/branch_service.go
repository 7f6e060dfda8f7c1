package branch

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sahl/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"branch not found",
		http.StatusNotFound,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"branch code already exists",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	GetAll(ctx context.Context) ([]BranchResponse, error)
	GetByID(ctx context.Context, id string) (BranchResponse, error)
	Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error) {
	b := &Branch{
		ID:       uuid.New(),
		Name:     req.Name,
		Code:     strings.ToLower(req.Code),
		Address:  req.Address,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return BranchResponse{}, ErrDuplicateCode
		}
		s.logger.Error("create branch persist failed", zap.Error(err))
		return BranchResponse{}, err
	}

	s.logger.Info("branch created", zap.String("branch_id", b.ID.String()), zap.String("code", b.Code))
	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BranchResponse, error) {
	branches, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = mapToResponse(b)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BranchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BranchResponse{}, ErrInvalidBranchID
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, ErrBranchNotFound
		}
		return BranchResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BranchResponse{}, ErrInvalidBranchID
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, ErrBranchNotFound
		}
		return BranchResponse{}, err
	}

	b.Name = req.Name
	b.Address = req.Address
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update branch persist failed", zap.String("branch_id", id), zap.Error(err))
		return BranchResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidBranchID
	}
	return s.repo.Delete(ctx, id)
}

func mapToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:       b.ID.String(),
		Name:     b.Name,
		Code:     b.Code,
		Address:  b.Address,
		IsActive: b.IsActive,
	}
}
