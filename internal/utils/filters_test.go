package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFiltersDefaults(t *testing.T) {
	filter := NormalizeFilters(RawFilters{}, EntityKindTasks)

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, "created_at", filter.SortBy)
	assert.Equal(t, OrderAsc, filter.Order)
	assert.Equal(t, 0, filter.Offset())
}

func TestNormalizeFilters(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawFilters
		entityKind string
		want       ListFilter
	}{
		{
			name:       "valid sort field passes through",
			raw:        RawFilters{SortBy: "title", Order: "desc", Page: "3", Limit: "25"},
			entityKind: EntityKindTasks,
			want:       ListFilter{Page: 3, Limit: 25, SortBy: "title", Order: "desc"},
		},
		{
			name:       "unknown sort field downgrades to created_at",
			raw:        RawFilters{SortBy: "password_hash"},
			entityKind: EntityKindUsers,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "sort field of another entity kind downgrades",
			raw:        RawFilters{SortBy: "title"},
			entityKind: EntityKindTeams,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "limit is capped",
			raw:        RawFilters{Limit: "5000"},
			entityKind: EntityKindProjects,
			want:       ListFilter{Page: 1, Limit: 100, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "non-numeric page and limit fall back to defaults",
			raw:        RawFilters{Page: "abc", Limit: "-4"},
			entityKind: EntityKindUsers,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "zero page falls back to the first page",
			raw:        RawFilters{Page: "0"},
			entityKind: EntityKindUsers,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "unknown order falls back to asc",
			raw:        RawFilters{Order: "sideways"},
			entityKind: EntityKindTeams,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
		{
			name:       "priority and status pass through for tasks only",
			raw:        RawFilters{Priority: "HIGH", Status: "TODO"},
			entityKind: EntityKindTasks,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc", Priority: "HIGH", Status: "TODO"},
		},
		{
			name:       "priority and status are dropped for non-task kinds",
			raw:        RawFilters{Priority: "HIGH", Status: "TODO"},
			entityKind: EntityKindProjects,
			want:       ListFilter{Page: 1, Limit: 10, SortBy: "created_at", Order: "asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFilters(tt.raw, tt.entityKind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListFilterOffset(t *testing.T) {
	filter := ListFilter{Page: 4, Limit: 25}
	assert.Equal(t, 75, filter.Offset())
}
