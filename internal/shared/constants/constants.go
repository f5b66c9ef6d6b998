package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType    = "Content-Type"
	HeaderAuthorization  = "Authorization"
	HeaderXRequestID     = "X-Request-ID"
	HeaderOrganizationID = "X-Organization-ID"

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
	ContextKeyActiveOrg = "active_organization_id"

	// System roles (platform-wide, distinct from per-organization membership roles)
	SystemRoleUser    = "USER"
	SystemRoleSupport = "SUPPORT"
	SystemRoleAdmin   = "ADMIN"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
	ErrMsgRateLimited         = "rate limit exceeded, please try again later"
)
