package tenant

import "gorm.io/gorm"

// Scope restricts a query to one organization. Every org-owned table carries
// an org_id column, so this is the single place tenancy filtering lives.
func Scope(orgID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("org_id = ?", orgID)
	}
}
