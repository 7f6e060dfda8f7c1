package access

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

type EnforceRequest struct {
	UserID   string
	Role     string
	BranchID string // branch the user belongs to
	TargetID string // branch named by the request, empty when not branch-scoped
	Resource string
	Action   string
}

//go:generate mockgen -source=access_service.go -destination=mock/access_service_mock.go -package=mock
type Service interface {
	LoadBranchPolicy(ctx context.Context, branchID string) error
	Enforce(ctx context.Context, req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("access.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadBranchPolicy(ctx context.Context, branchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadBranchPolicyUnlocked(ctx, branchID)
}

func (s *service) loadBranchPolicyUnlocked(ctx context.Context, branchID string) error {
	s.enforcer.ClearPolicy()

	perms, err := s.repo.GetBranchPermissions(ctx, branchID)
	if err != nil {
		return err
	}
	s.logger.Debug("branch policy loaded",
		zap.String("branch_id", branchID),
		zap.Int("permissions", len(perms)),
	)

	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.UserID, p.BranchID, p.Resource, p.Action); err != nil {
			return err
		}
	}

	return nil
}

// Enforce implements the branch/permission guard: ADMIN is always allowed;
// everyone else needs a matching permission row and, when the request names a
// branch, that branch must be their own.
func (s *service) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	if req.Role == RoleAdmin {
		return true, nil
	}

	if req.TargetID != "" && req.TargetID != req.BranchID {
		s.logger.Warn("branch isolation denied",
			zap.String("user_id", req.UserID),
			zap.String("user_branch", req.BranchID),
			zap.String("target_branch", req.TargetID),
		)
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadBranchPolicyUnlocked(ctx, req.BranchID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.BranchID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("user_id", req.UserID),
		zap.String("branch_id", req.BranchID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
