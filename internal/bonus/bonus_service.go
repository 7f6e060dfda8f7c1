package bonus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sahl/internal/access"
	bonuserrors "sahl/internal/bonus/errors"
	"sahl/internal/revenue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryCacheTTL = 5 * time.Minute

// Caller identifies who is asking, so branch isolation can be applied.
type Caller struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
	Role     string
}

// ContributionSource supplies an employee's revenue contributions for a month.
type ContributionSource interface {
	ContributionsByEmployeeAndMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]revenue.ContributionByDay, error)
}

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	CreateRule(ctx context.Context, caller Caller, req CreateRuleRequest) (*RuleResponse, error)
	GetRules(ctx context.Context, caller Caller, branchID string) ([]RuleResponse, error)
	UpdateRule(ctx context.Context, caller Caller, id string, req UpdateRuleRequest) (*RuleResponse, error)
	DeleteRule(ctx context.Context, caller Caller, id string) error
	MonthlySummary(ctx context.Context, caller Caller, employeeID string, year, month int) (*MonthlySummary, error)
}

type service struct {
	repo          Repository
	contributions ContributionSource
	rdb           *redis.Client
	group         singleflight.Group
	logger        *zap.Logger
}

func NewService(repo Repository, contributions ContributionSource, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	return &service{
		repo:          repo,
		contributions: contributions,
		rdb:           rdb,
		logger:        l,
	}
}

func (s *service) CreateRule(ctx context.Context, caller Caller, req CreateRuleRequest) (*RuleResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, bonuserrors.ErrInvalidBranchID
	}

	rule := &BonusRule{
		ID:              uuid.New(),
		BranchID:        branchID,
		WeeklyThreshold: req.WeeklyThreshold,
		BonusAmount:     req.BonusAmount,
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		if isUniqueViolation(err) {
			return nil, bonuserrors.ErrDuplicateThreshold
		}
		s.logger.Error("create bonus rule failed", zap.String("branch_id", branchID.String()), zap.Error(err))
		return nil, err
	}

	resp := mapRuleToResponse(rule)
	return &resp, nil
}

func (s *service) GetRules(ctx context.Context, caller Caller, branchID string) ([]RuleResponse, error) {
	id := caller.BranchID
	if branchID != "" {
		parsed, err := uuid.Parse(branchID)
		if err != nil {
			return nil, bonuserrors.ErrInvalidBranchID
		}
		if caller.Role != access.RoleAdmin && parsed != caller.BranchID {
			return nil, bonuserrors.ErrRuleNotFound
		}
		id = parsed
	}

	rules, err := s.repo.FindRulesByBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := make([]RuleResponse, 0, len(rules))
	for i := range rules {
		resp = append(resp, mapRuleToResponse(&rules[i]))
	}
	return resp, nil
}

func (s *service) UpdateRule(ctx context.Context, caller Caller, id string, req UpdateRuleRequest) (*RuleResponse, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return nil, bonuserrors.ErrInvalidRuleID
	}

	rule, err := s.repo.FindRuleByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bonuserrors.ErrRuleNotFound
		}
		return nil, err
	}

	if req.WeeklyThreshold != nil {
		rule.WeeklyThreshold = *req.WeeklyThreshold
	}
	if req.BonusAmount != nil {
		rule.BonusAmount = *req.BonusAmount
	}

	if err := s.repo.UpdateRule(ctx, rule); err != nil {
		if isUniqueViolation(err) {
			return nil, bonuserrors.ErrDuplicateThreshold
		}
		return nil, err
	}

	resp := mapRuleToResponse(rule)
	return &resp, nil
}

func (s *service) DeleteRule(ctx context.Context, caller Caller, id string) error {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return bonuserrors.ErrInvalidRuleID
	}

	if _, err := s.repo.FindRuleByID(ctx, ruleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bonuserrors.ErrRuleNotFound
		}
		return err
	}

	return s.repo.DeleteRule(ctx, ruleID)
}

func (s *service) MonthlySummary(ctx context.Context, caller Caller, employeeID string, year, month int) (*MonthlySummary, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, bonuserrors.ErrInvalidEmployeeID
	}
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, bonuserrors.ErrInvalidPeriod
	}

	cacheKey := fmt.Sprintf("bonus:summary:%s:%s:%d-%02d", caller.BranchID, empID, year, month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var summary MonthlySummary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
		}
	}

	// singleflight collapses concurrent requests for the same period into
	// one database round trip.
	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		return s.computeSummary(ctx, caller, empID, year, time.Month(month))
	})
	if err != nil {
		return nil, err
	}
	summary := v.(*MonthlySummary)

	if s.rdb != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, summaryCacheTTL).Err(); err != nil {
				s.logger.Warn("cache bonus summary failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return summary, nil
}

func (s *service) computeSummary(ctx context.Context, caller Caller, employeeID uuid.UUID, year int, month time.Month) (*MonthlySummary, error) {
	rules, err := s.repo.FindRulesByBranch(ctx, caller.BranchID)
	if err != nil {
		return nil, err
	}

	contributions, err := s.contributions.ContributionsByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	incomeByDay := make(map[int]float64, len(contributions))
	for _, c := range contributions {
		incomeByDay[c.Date.Day()] += c.Amount
	}

	summary := Calculate(rules, incomeByDay, year, month)
	summary.EmployeeID = employeeID.String()
	return &summary, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
