package database

import (
	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// Soft-delete filtering is handled by gorm.DeletedAt on every model; the
// scopes below add the remaining cross-cutting clauses so no query spells
// out organization scoping or pagination by hand.

// InOrganization restricts a query to one tenant.
func InOrganization(organizationID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}

// TaskInOrganization restricts a task query to one tenant through the
// owning project. Tasks carry no organization id of their own.
func TaskInOrganization(organizationID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN projects ON projects.id = tasks.project_id AND projects.deleted_at IS NULL").
			Where("projects.organization_id = ?", organizationID)
	}
}

// Paginate applies the offset/limit of a validated list filter.
func Paginate(filter utils.ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(filter.Offset()).Limit(filter.Limit)
	}
}

// Sort applies the validated sort column and direction. The column has
// already been checked against the per-entity allow-list, so it is safe
// to splice into the ORDER BY clause.
func Sort(filter utils.ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		direction := "ASC"
		if filter.Order == utils.OrderDesc {
			direction = "DESC"
		}
		return db.Order(filter.SortBy + " " + direction)
	}
}

// Search applies a LIKE filter on column when the filter carries a search
// term. column is always a compile-time constant chosen by the caller.
func Search(column string, filter utils.ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		return db.Where(column+" LIKE ?", "%"+filter.Search+"%")
	}
}
