package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// statusFor maps an error kind to its HTTP status code.
func statusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a response envelope with the mapped status code.
func Respond(c *gin.Context, err error) {
	c.JSON(statusFor(KindOf(err)), utils.Response{
		Success: false,
		Message: MessageOf(err),
		Error:   DetailOf(err),
	})
}

// RespondUnauthenticated writes a 401 envelope for missing/invalid sessions.
func RespondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, utils.Response{
		Success: false,
		Message: "Authentication required",
	})
}
