package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindAllByBranch(ctx context.Context, branchID string) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	ReplacePermissions(ctx context.Context, userID string, perms []UserPermission) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("branch_id = ?", branchID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) ReplacePermissions(ctx context.Context, userID string, perms []UserPermission) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&UserPermission{}).Error; err != nil {
		return err
	}
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&perms).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}
