package branchscope

import "gorm.io/gorm"

// Scope restricts a query to one branch. Every branch-isolated repository
// applies it so cross-branch reads cannot slip through.
func Scope(branchID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("branch_id = ?", branchID)
	}
}
