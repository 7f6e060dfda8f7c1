package access

import (
	"context"

	"gorm.io/gorm"
)

type PermissionRow struct {
	UserID   string
	BranchID string
	Resource string
	Action   string
}

//go:generate mockgen -source=access_repo.go -destination=mock/access_repo_mock.go -package=mock
type Repository interface {
	GetBranchPermissions(ctx context.Context, branchID string) ([]PermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBranchPermissions(ctx context.Context, branchID string) ([]PermissionRow, error) {
	var rows []PermissionRow
	err := r.db.WithContext(ctx).
		Table("user_permissions").
		Select("user_permissions.user_id::text AS user_id, users.branch_id::text AS branch_id, user_permissions.resource, user_permissions.action").
		Joins("JOIN users ON users.id = user_permissions.user_id").
		Where("users.branch_id = ?", branchID).
		Where("users.is_active = true").
		Where("users.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}
