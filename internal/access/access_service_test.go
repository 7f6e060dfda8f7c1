package access_test

import (
	"context"
	"testing"

	"sahl/internal/access"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAccessRepository struct {
	rows []access.PermissionRow
	err  error
}

func (f *fakeAccessRepository) GetBranchPermissions(ctx context.Context, branchID string) ([]access.PermissionRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]access.PermissionRow, 0, len(f.rows))
	for _, r := range f.rows {
		if r.BranchID == branchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newAccessService(t *testing.T, repo access.Repository) access.Service {
	t.Helper()

	enforcer, err := access.NewEnforcer()
	assert.NoError(t, err)
	return access.NewService(repo, enforcer)
}

func TestAccessService_Enforce(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	branchID := uuid.New().String()

	t.Run("admin bypasses the enforcer", func(t *testing.T) {
		svc := newAccessService(t, &fakeAccessRepository{})

		allowed, err := svc.Enforce(ctx, access.EnforceRequest{
			UserID:   userID,
			Role:     access.RoleAdmin,
			BranchID: branchID,
			TargetID: uuid.New().String(),
			Resource: "revenue",
			Action:   "create",
		})

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("request naming another branch is denied before any policy check", func(t *testing.T) {
		repo := &fakeAccessRepository{rows: []access.PermissionRow{
			{UserID: userID, BranchID: branchID, Resource: "revenue", Action: "create"},
		}}
		svc := newAccessService(t, repo)

		allowed, err := svc.Enforce(ctx, access.EnforceRequest{
			UserID:   userID,
			Role:     access.RoleManager,
			BranchID: branchID,
			TargetID: uuid.New().String(),
			Resource: "revenue",
			Action:   "create",
		})

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("matching permission row allows the action", func(t *testing.T) {
		repo := &fakeAccessRepository{rows: []access.PermissionRow{
			{UserID: userID, BranchID: branchID, Resource: "revenue", Action: "create"},
		}}
		svc := newAccessService(t, repo)

		allowed, err := svc.Enforce(ctx, access.EnforceRequest{
			UserID:   userID,
			Role:     access.RoleEmployee,
			BranchID: branchID,
			TargetID: branchID,
			Resource: "revenue",
			Action:   "create",
		})

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("missing permission row denies the action", func(t *testing.T) {
		repo := &fakeAccessRepository{rows: []access.PermissionRow{
			{UserID: userID, BranchID: branchID, Resource: "revenue", Action: "read"},
		}}
		svc := newAccessService(t, repo)

		allowed, err := svc.Enforce(ctx, access.EnforceRequest{
			UserID:   userID,
			Role:     access.RoleEmployee,
			BranchID: branchID,
			Resource: "revenue",
			Action:   "delete",
		})

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("another user's permission does not leak", func(t *testing.T) {
		repo := &fakeAccessRepository{rows: []access.PermissionRow{
			{UserID: uuid.New().String(), BranchID: branchID, Resource: "expense", Action: "create"},
		}}
		svc := newAccessService(t, repo)

		allowed, err := svc.Enforce(ctx, access.EnforceRequest{
			UserID:   userID,
			Role:     access.RoleEmployee,
			BranchID: branchID,
			Resource: "expense",
			Action:   "create",
		})

		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
