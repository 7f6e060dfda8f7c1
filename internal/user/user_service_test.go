package user_test

import (
	"context"
	"errors"
	"testing"

	"sahl/internal/access"
	"sahl/internal/user"
	usererrors "sahl/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn             func(ctx context.Context, u *user.User) error
	findAllFn            func(ctx context.Context) ([]user.User, error)
	findAllByBranchFn    func(ctx context.Context, branchID string) ([]user.User, error)
	findByIDFn           func(ctx context.Context, id string) (*user.User, error)
	updateFn             func(ctx context.Context, u *user.User) error
	replacePermissionsFn func(ctx context.Context, userID string, perms []user.UserPermission) error
	deleteFn             func(ctx context.Context, id string) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindAllByBranch(ctx context.Context, branchID string) ([]user.User, error) {
	if f.findAllByBranchFn != nil {
		return f.findAllByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) ReplacePermissions(ctx context.Context, userID string, perms []user.UserPermission) error {
	if f.replacePermissionsFn != nil {
		return f.replacePermissionsFn(ctx, userID, perms)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()

	t.Run("hashes the password and attaches permissions", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		var created *user.User
		repo.createFn = func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		}

		resp, err := svc.Create(ctx, user.CreateUserRequest{
			BranchID: branchID.String(),
			Name:     "Kasir Satu",
			Email:    "Kasir@Sahl.Example",
			Password: "secret123",
			Role:     access.RoleEmployee,
			Permissions: []user.PermissionInput{
				{Resource: "revenue", Action: "create"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "kasir@sahl.example", created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
		assert.Len(t, created.Permissions, 1)
		assert.Equal(t, created.ID, created.Permissions[0].UserID)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate email maps to a conflict", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		repo.createFn = func(ctx context.Context, u *user.User) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
		}

		_, err := svc.Create(ctx, user.CreateUserRequest{
			BranchID: branchID.String(),
			Name:     "Kasir Dua",
			Email:    "kasir@sahl.example",
			Password: "secret123",
			Role:     access.RoleEmployee,
		})

		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
	})

	t.Run("bad branch id is rejected", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		_, err := svc.Create(ctx, user.CreateUserRequest{
			BranchID: "not-a-uuid",
			Name:     "X",
			Email:    "x@sahl.example",
			Password: "secret123",
			Role:     access.RoleEmployee,
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidBranchID)
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()

	t.Run("non admin sees only their branch", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		var asked string
		repo.findAllByBranchFn = func(ctx context.Context, b string) ([]user.User, error) {
			asked = b
			return nil, nil
		}

		_, err := svc.GetAll(ctx, access.RoleManager, branchID)

		assert.NoError(t, err)
		assert.Equal(t, branchID, asked)
	})

	t.Run("admin sees everyone", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		allCalled := false
		repo.findAllFn = func(ctx context.Context) ([]user.User, error) {
			allCalled = true
			return nil, nil
		}

		_, err := svc.GetAll(ctx, access.RoleAdmin, branchID)

		assert.NoError(t, err)
		assert.True(t, allCalled)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()

	t.Run("replaces permissions when the request carries them", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		u := &user.User{ID: uuid.New(), BranchID: branchID, Name: "Old", Role: access.RoleEmployee}
		repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		}

		var replaced []user.UserPermission
		repo.replacePermissionsFn = func(ctx context.Context, userID string, perms []user.UserPermission) error {
			replaced = perms
			return nil
		}

		resp, err := svc.Update(ctx, u.ID.String(), user.UpdateUserRequest{
			Name:     "New Name",
			Role:     access.RoleManager,
			BranchID: branchID.String(),
			Permissions: []user.PermissionInput{
				{Resource: "expense", Action: "create"},
				{Resource: "expense", Action: "read"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
		assert.Len(t, replaced, 2)
	})

	t.Run("permissions are untouched when omitted", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo)

		u := &user.User{ID: uuid.New(), BranchID: branchID, Name: "Old", Role: access.RoleEmployee}
		repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		}

		replaceCalled := false
		repo.replacePermissionsFn = func(ctx context.Context, userID string, perms []user.UserPermission) error {
			replaceCalled = true
			return nil
		}

		_, err := svc.Update(ctx, u.ID.String(), user.UpdateUserRequest{
			Name:     "New Name",
			Role:     access.RoleEmployee,
			BranchID: branchID.String(),
		})

		assert.NoError(t, err)
		assert.False(t, replaceCalled)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		_, err := svc.Update(ctx, uuid.New().String(), user.UpdateUserRequest{
			Name:     "X",
			Role:     access.RoleEmployee,
			BranchID: branchID.String(),
		})

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
