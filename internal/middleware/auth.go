package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
)

// Identity is the per-call caller identity trusted by the services.
type Identity struct {
	UserID         uint64
	OrganizationID uint64
	Role           string
}

// RequireAuth resolves the session user, derives the effective role from
// the user's role rows and stores the identity in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		rawUserID := session.Get(constants.ContextKeyUserID)
		if rawUserID == nil {
			apperrors.RespondUnauthenticated(c)
			c.Abort()
			return
		}

		userID, ok := toUint64(rawUserID)
		if !ok {
			apperrors.RespondUnauthenticated(c)
			c.Abort()
			return
		}

		userRepo := repository.NewUserRepository(database.GetDB())
		user, err := userRepo.FindByID(userID)
		if err != nil || user == nil {
			apperrors.RespondUnauthenticated(c)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyOrganizationID, user.OrganizationID)
		c.Set(constants.ContextKeyUserRole, models.DetermineHighestRole(user.Roles))
		c.Next()
	}
}

// GetIdentity retrieves the caller identity from the request context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	rawUserID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return Identity{}, false
	}
	userID, ok := toUint64(rawUserID)
	if !ok {
		return Identity{}, false
	}

	rawOrgID, exists := c.Get(constants.ContextKeyOrganizationID)
	if !exists {
		return Identity{}, false
	}
	orgID, ok := toUint64(rawOrgID)
	if !ok {
		return Identity{}, false
	}

	role, _ := c.Get(constants.ContextKeyUserRole)
	roleName, _ := role.(string)
	if roleName == "" {
		roleName = models.RoleMember
	}

	return Identity{UserID: userID, OrganizationID: orgID, Role: roleName}, true
}

// IsAdmin reports whether the current caller holds an admin role.
func (i Identity) IsAdmin() bool {
	return models.IsAdminRole(i.Role)
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
