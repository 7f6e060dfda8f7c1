package request_test

import (
	"context"
	"testing"

	"sahl/internal/access"
	"sahl/internal/request"
	requesterrors "sahl/internal/request/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	createFn          func(ctx context.Context, r *request.Request) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*request.Request, error)
	findAllFn         func(ctx context.Context) ([]request.Request, error)
	findAllByBranchFn func(ctx context.Context, branchID uuid.UUID) ([]request.Request, error)
	updateFn          func(ctx context.Context, r *request.Request) error
}

func (f *fakeRequestRepository) Create(ctx context.Context, r *request.Request) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepository) FindAll(ctx context.Context) ([]request.Request, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRequestRepository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]request.Request, error) {
	if f.findAllByBranchFn != nil {
		return f.findAllByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func adminCaller(branchID uuid.UUID) request.Caller {
	return request.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleAdmin}
}

func employeeCaller(branchID uuid.UUID) request.Caller {
	return request.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleEmployee}
}

func storedRequest(branchID uuid.UUID, status string) *request.Request {
	amount := 2500.0
	return &request.Request{
		ID:       uuid.New(),
		BranchID: branchID,
		UserID:   uuid.New(),
		Type:     request.TypeAdvance,
		Status:   status,
		Amount:   &amount,
	}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	caller := employeeCaller(branchID)

	t.Run("leave request needs both dates", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		_, err := svc.Create(ctx, caller, request.CreateRequestRequest{
			BranchID:  branchID.String(),
			Type:      request.TypeLeave,
			StartDate: "2026-06-01",
		})

		assert.ErrorIs(t, err, requesterrors.ErrMissingTypeFields)
	})

	t.Run("leave end date may not precede start date", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		_, err := svc.Create(ctx, caller, request.CreateRequestRequest{
			BranchID:  branchID.String(),
			Type:      request.TypeLeave,
			StartDate: "2026-06-10",
			EndDate:   "2026-06-01",
		})

		assert.ErrorIs(t, err, requesterrors.ErrInvalidDateRange)
	})

	t.Run("advance request stores the amount and starts pending", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		var created *request.Request
		repo.createFn = func(ctx context.Context, r *request.Request) error {
			created = r
			return nil
		}

		resp, err := svc.Create(ctx, caller, request.CreateRequestRequest{
			BranchID: branchID.String(),
			Type:     request.TypeAdvance,
			Amount:   1500,
		})

		assert.NoError(t, err)
		assert.Equal(t, request.StatusPending, created.Status)
		assert.Equal(t, 1500.0, *created.Amount)
		assert.Equal(t, request.StatusPending, resp.Status)
	})

	t.Run("overtime request needs date and hours", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		_, err := svc.Create(ctx, caller, request.CreateRequestRequest{
			BranchID:     branchID.String(),
			Type:         request.TypeOvertime,
			OvertimeDate: "2026-06-15",
		})

		assert.ErrorIs(t, err, requesterrors.ErrMissingTypeFields)
	})

	t.Run("cannot create for another branch", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		_, err := svc.Create(ctx, caller, request.CreateRequestRequest{
			BranchID: uuid.New().String(),
			Type:     request.TypeAdvance,
			Amount:   1500,
		})

		assert.ErrorIs(t, err, requesterrors.ErrBranchMismatch)
	})
}

func TestRequestService_Transitions(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	admin := adminCaller(branchID)

	t.Run("approve pending records reviewer metadata", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(branchID, request.StatusPending)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		var updated *request.Request
		repo.updateFn = func(ctx context.Context, r *request.Request) error {
			updated = r
			return nil
		}

		resp, err := svc.Approve(ctx, admin, stored.ID.String(), request.ReviewRequestRequest{AdminNote: "ok"})

		assert.NoError(t, err)
		assert.Equal(t, request.StatusApproved, resp.Status)
		assert.Equal(t, admin.UserID, *updated.ReviewedBy)
		assert.Equal(t, "ok", updated.AdminNote)
		assert.NotNil(t, updated.ReviewedAt)
	})

	t.Run("reject from in_review is allowed", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(branchID, request.StatusInReview)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		resp, err := svc.Reject(ctx, admin, stored.ID.String(), request.ReviewRequestRequest{})

		assert.NoError(t, err)
		assert.Equal(t, request.StatusRejected, resp.Status)
	})

	t.Run("re-approving an approved request is an invalid transition", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(branchID, request.StatusApproved)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		updateCalled := false
		repo.updateFn = func(ctx context.Context, r *request.Request) error {
			updateCalled = true
			return nil
		}

		_, err := svc.Approve(ctx, admin, stored.ID.String(), request.ReviewRequestRequest{})

		assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
		assert.False(t, updateCalled)
	})

	t.Run("rejected requests stay rejected", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(branchID, request.StatusRejected)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		_, err := svc.Review(ctx, admin, stored.ID.String(), request.ReviewRequestRequest{})

		assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("non admin cannot transition", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(branchID, request.StatusPending)
		_, err := svc.Approve(ctx, employeeCaller(branchID), stored.ID.String(), request.ReviewRequestRequest{})

		assert.ErrorIs(t, err, requesterrors.ErrReviewForbidden)
	})

	t.Run("unknown request id is not found", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		_, err := svc.Approve(ctx, admin, uuid.New().String(), request.ReviewRequestRequest{})

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})
}

func TestRequestService_GetByID(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()

	t.Run("other branch request reads as not found", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(uuid.New(), request.StatusPending)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		_, err := svc.GetByID(ctx, employeeCaller(branchID), stored.ID.String())

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})

	t.Run("admin sees every branch", func(t *testing.T) {
		repo := &fakeRequestRepository{}
		svc := request.NewService(repo)

		stored := storedRequest(uuid.New(), request.StatusPending)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*request.Request, error) {
			return stored, nil
		}

		resp, err := svc.GetByID(ctx, adminCaller(branchID), stored.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, stored.ID.String(), resp.ID)
	})
}
