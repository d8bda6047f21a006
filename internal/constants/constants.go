package constants

// Session / context keys
const (
	ContextKeyUserID         = "user_id"
	ContextKeyOrganizationID = "organization_id"
	ContextKeyUserRole       = "user_role"
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength = 8
)
