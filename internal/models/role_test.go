package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineHighestRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		want  string
	}{
		{"no role rows defaults to member", nil, RoleMember},
		{"single member role", []Role{{Name: RoleMember}}, RoleMember},
		{"org admin beats member", []Role{{Name: RoleMember}, {Name: RoleOrgAdmin}}, RoleOrgAdmin},
		{"super admin beats org admin", []Role{{Name: RoleOrgAdmin}, {Name: RoleSuperAdmin}}, RoleSuperAdmin},
		{"order of rows does not matter", []Role{{Name: RoleSuperAdmin}, {Name: RoleMember}}, RoleSuperAdmin},
		{"unknown role names are ignored", []Role{{Name: "INTERN"}}, RoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineHighestRole(tt.roles))
		})
	}
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole(RoleSuperAdmin))
	assert.True(t, IsAdminRole(RoleOrgAdmin))
	assert.False(t, IsAdminRole(RoleMember))
	assert.False(t, IsAdminRole(""))
}

func TestBookmarkEntityTypeValid(t *testing.T) {
	assert.True(t, BookmarkEntityType("Task").Valid())
	assert.True(t, BookmarkEntityType("Project").Valid())
	assert.False(t, BookmarkEntityType("task").Valid())
	assert.False(t, BookmarkEntityType("User").Valid())
	assert.False(t, BookmarkEntityType("").Valid())
}
