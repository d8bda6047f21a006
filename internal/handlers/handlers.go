// Package handlers contains the gin HTTP handlers. Handlers stay thin:
// they bind the request, resolve the caller's identity from the session
// context, delegate to a service and translate the outcome into the
// response envelope.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
)

// parseIDParam reads a numeric path parameter. A non-numeric value is a
// validation error, not a 404.
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("Invalid " + name + " parameter")
	}
	return id, nil
}
