package utils

import (
	"strconv"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
)

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Entity kinds understood by the filter validator.
const (
	EntityKindUsers    = "users"
	EntityKindTeams    = "teams"
	EntityKindProjects = "projects"
	EntityKindTasks    = "tasks"
)

const defaultSortBy = "created_at"

// sortableFields is the per-entity allow-list. A sortBy value outside the
// list is silently downgraded to created_at, never rejected.
var sortableFields = map[string]map[string]bool{
	EntityKindUsers: {
		"first_name": true,
		"last_name":  true,
		"email":      true,
		"username":   true,
		"created_at": true,
	},
	EntityKindTeams: {
		"name":       true,
		"created_at": true,
	},
	EntityKindProjects: {
		"name":       true,
		"start_date": true,
		"end_date":   true,
		"created_at": true,
	},
	EntityKindTasks: {
		"title":      true,
		"status":     true,
		"priority":   true,
		"start_date": true,
		"due_date":   true,
		"points":     true,
		"created_at": true,
	},
}

// RawFilters is the unvalidated query surface of every list operation.
type RawFilters struct {
	Search   string
	Page     string
	Limit    string
	SortBy   string
	Order    string
	Priority string
	Status   string
}

// ListFilter is the validated, immutable descriptor consumed by list
// queries. It is always well-formed; validation has no failure mode.
type ListFilter struct {
	Search   string
	Page     int
	Limit    int
	SortBy   string
	Order    string
	Priority string
	Status   string
}

// Offset returns the row offset for the current page.
func (f ListFilter) Offset() int {
	return f.Limit * (f.Page - 1)
}

// NormalizeFilters validates raw list parameters against the allow-list
// for entityKind and fills defaults. Priority and status pass through only
// for the tasks entity kind.
func NormalizeFilters(raw RawFilters, entityKind string) ListFilter {
	filter := ListFilter{
		Search: raw.Search,
		Page:   constants.MinPage,
		Limit:  constants.DefaultPageSize,
		SortBy: defaultSortBy,
		Order:  OrderAsc,
	}

	if page, err := strconv.Atoi(raw.Page); err == nil && page >= constants.MinPage {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(raw.Limit); err == nil && limit > 0 {
		if limit > constants.MaxPageSize {
			limit = constants.MaxPageSize
		}
		filter.Limit = limit
	}

	if raw.Order == OrderDesc {
		filter.Order = OrderDesc
	}

	if allowed, ok := sortableFields[entityKind]; ok && allowed[raw.SortBy] {
		filter.SortBy = raw.SortBy
	} else if raw.SortBy == defaultSortBy {
		filter.SortBy = defaultSortBy
	}

	if entityKind == EntityKindTasks {
		filter.Priority = raw.Priority
		filter.Status = raw.Status
	}

	return filter
}
