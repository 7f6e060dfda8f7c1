package productrequest_test

import (
	"context"
	"testing"

	"sahl/internal/access"
	"sahl/internal/productrequest"
	productrequesterrors "sahl/internal/productrequest/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProductRequestRepository struct {
	createFn          func(ctx context.Context, pr *productrequest.ProductRequest) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error)
	findAllFn         func(ctx context.Context) ([]productrequest.ProductRequest, error)
	findAllByBranchFn func(ctx context.Context, branchID uuid.UUID) ([]productrequest.ProductRequest, error)
	updateFn          func(ctx context.Context, pr *productrequest.ProductRequest) error
}

func (f *fakeProductRequestRepository) Create(ctx context.Context, pr *productrequest.ProductRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, pr)
	}
	return nil
}

func (f *fakeProductRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRequestRepository) FindAll(ctx context.Context) ([]productrequest.ProductRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeProductRequestRepository) FindAllByBranch(ctx context.Context, branchID uuid.UUID) ([]productrequest.ProductRequest, error) {
	if f.findAllByBranchFn != nil {
		return f.findAllByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeProductRequestRepository) Update(ctx context.Context, pr *productrequest.ProductRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, pr)
	}
	return nil
}

func validCreateRequest(branchID uuid.UUID) productrequest.CreateProductRequestRequest {
	return productrequest.CreateProductRequestRequest{
		BranchID: branchID.String(),
		Items: []productrequest.LineItemInput{
			{ProductName: "Shampoo 1L", Quantity: 10, UnitPrice: 25, LineTotal: 250},
			{ProductName: "Hair clips", Quantity: 40, UnitPrice: 2.5, LineTotal: 100},
		},
		TotalAmount: 350,
	}
}

func TestProductRequestService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	caller := productrequest.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleEmployee}

	t.Run("valid lines and total are accepted", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		var created *productrequest.ProductRequest
		repo.createFn = func(ctx context.Context, pr *productrequest.ProductRequest) error {
			created = pr
			return nil
		}

		resp, err := svc.Create(ctx, caller, validCreateRequest(branchID))

		assert.NoError(t, err)
		assert.Equal(t, productrequest.StatusPending, created.Status)
		assert.Len(t, created.Items, 2)
		assert.Equal(t, 350.0, resp.TotalAmount)
	})

	t.Run("line total not matching qty times price is rejected", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		req := validCreateRequest(branchID)
		req.Items[0].LineTotal = 300 // 10*25 != 300

		_, err := svc.Create(ctx, caller, req)

		assert.ErrorIs(t, err, productrequesterrors.ErrLineTotalMismatch)
	})

	t.Run("aggregate not matching the line sum is rejected", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		req := validCreateRequest(branchID)
		req.TotalAmount = 400

		_, err := svc.Create(ctx, caller, req)

		assert.ErrorIs(t, err, productrequesterrors.ErrTotalMismatch)
	})

	t.Run("cannot create for another branch", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		req := validCreateRequest(uuid.New())

		_, err := svc.Create(ctx, caller, req)

		assert.ErrorIs(t, err, productrequesterrors.ErrBranchMismatch)
	})
}

func TestProductRequestService_Transitions(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	admin := productrequest.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleAdmin}

	stored := func(status string) *productrequest.ProductRequest {
		return &productrequest.ProductRequest{
			ID:          uuid.New(),
			BranchID:    branchID,
			RequestedBy: uuid.New(),
			Status:      status,
			TotalAmount: 350,
		}
	}

	t.Run("pending to in_review to approved", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		pr := stored(productrequest.StatusPending)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error) {
			return pr, nil
		}

		resp, err := svc.Review(ctx, admin, pr.ID.String(), productrequest.ReviewProductRequestRequest{})
		assert.NoError(t, err)
		assert.Equal(t, productrequest.StatusInReview, resp.Status)

		resp, err = svc.Approve(ctx, admin, pr.ID.String(), productrequest.ReviewProductRequestRequest{AdminNote: "order it"})
		assert.NoError(t, err)
		assert.Equal(t, productrequest.StatusApproved, resp.Status)
		assert.Equal(t, "order it", resp.AdminNote)
	})

	t.Run("approved request cannot be approved again", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		pr := stored(productrequest.StatusApproved)
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*productrequest.ProductRequest, error) {
			return pr, nil
		}

		_, err := svc.Approve(ctx, admin, pr.ID.String(), productrequest.ReviewProductRequestRequest{})

		assert.ErrorIs(t, err, productrequesterrors.ErrInvalidTransition)
	})

	t.Run("non admin cannot review", func(t *testing.T) {
		repo := &fakeProductRequestRepository{}
		svc := productrequest.NewService(repo)

		employee := productrequest.Caller{UserID: uuid.New(), BranchID: branchID, Role: access.RoleEmployee}

		_, err := svc.Approve(ctx, employee, uuid.New().String(), productrequest.ReviewProductRequestRequest{})

		assert.ErrorIs(t, err, productrequesterrors.ErrReviewForbidden)
	})
}
