package models

type Role struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// UserRole is the join table between users and roles.
type UserRole struct {
	UserID uint64 `gorm:"primarykey" json:"user_id"`
	RoleID uint64 `gorm:"primarykey" json:"role_id"`
}

// Effective role names, highest first.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleOrgAdmin   = "ORG_ADMIN"
	RoleMember     = "MEMBER"
)

// DetermineHighestRole derives the effective role from a user's role rows.
// The result is computed on every read and never persisted, so role
// changes take effect without a write to the user row.
func DetermineHighestRole(roles []Role) string {
	highest := RoleMember
	for _, role := range roles {
		switch role.Name {
		case RoleSuperAdmin:
			return RoleSuperAdmin
		case RoleOrgAdmin:
			highest = RoleOrgAdmin
		}
	}
	return highest
}

// IsAdminRole reports whether the derived role grants admin privileges.
func IsAdminRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleOrgAdmin
}
