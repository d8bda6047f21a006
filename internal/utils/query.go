package utils

import "github.com/gin-gonic/gin"

// FiltersFromQuery extracts the list query surface from the request and
// normalizes it for the given entity kind.
func FiltersFromQuery(c *gin.Context, entityKind string) ListFilter {
	return NormalizeFilters(RawFilters{
		Search:   c.Query("search"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		SortBy:   c.Query("sortBy"),
		Order:    c.Query("order"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
	}, entityKind)
}
