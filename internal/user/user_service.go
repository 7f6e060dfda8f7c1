package user

import (
	"context"
	"errors"
	"strings"

	"sahl/internal/access"
	usererrors "sahl/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, actorRole, actorBranchID string) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	branchUUID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidBranchID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		BranchID: branchUUID,
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	u.Permissions = mapPermissions(u.ID, req.Permissions)

	if err := s.repo.Create(ctx, u); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return UserResponse{}, usererrors.ErrEmailTaken
		}
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.String("branch_id", req.BranchID),
	)
	return mapToResponse(*u), nil
}

// GetAll returns every user for admins and only the caller's branch otherwise.
func (s *service) GetAll(ctx context.Context, actorRole, actorBranchID string) ([]UserResponse, error) {
	var (
		users []User
		err   error
	)
	if actorRole == access.RoleAdmin {
		users, err = s.repo.FindAll(ctx)
	} else {
		users, err = s.repo.FindAllByBranch(ctx, actorBranchID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	branchUUID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidBranchID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.Name = req.Name
	u.Role = req.Role
	u.BranchID = branchUUID
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}

	perms := mapPermissions(u.ID, req.Permissions)
	u.Permissions = perms

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	if req.Permissions != nil {
		if err := s.repo.ReplacePermissions(ctx, id, perms); err != nil {
			s.logger.Error("replace permissions failed", zap.String("user_id", id), zap.Error(err))
			return UserResponse{}, err
		}
	}

	s.logger.Info("user updated", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	return s.repo.Delete(ctx, id)
}

func mapPermissions(userID uuid.UUID, inputs []PermissionInput) []UserPermission {
	perms := make([]UserPermission, len(inputs))
	for i, p := range inputs {
		perms[i] = UserPermission{
			ID:       uuid.New(),
			UserID:   userID,
			Resource: p.Resource,
			Action:   p.Action,
		}
	}
	return perms
}

func mapToResponse(u User) UserResponse {
	perms := make([]PermissionInput, len(u.Permissions))
	for i, p := range u.Permissions {
		perms[i] = PermissionInput{Resource: p.Resource, Action: p.Action}
	}
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		BranchID:    u.BranchID.String(),
		IsActive:    u.IsActive,
		Permissions: perms,
	}
}
