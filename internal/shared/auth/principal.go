// Package auth carries the authenticated request identity and the pure
// authorization predicates shared by the organization and ticket use cases.
package auth

import "crewdesk/internal/shared/constants"

// Principal is the verified identity resolved from a request. It is produced
// by the authentication middleware and consumed by every gated operation.
type Principal struct {
	UserID     uint
	Email      string
	Name       string
	SystemRole string
}

// RequestContext bundles the principal with the optional active-organization
// scope supplied out-of-band (X-Organization-ID header). Operations that also
// receive an explicit organization id must check agreement via Validate.
type RequestContext struct {
	Principal            Principal
	ActiveOrganizationID *uint
}

// ValidateOrganizationScope reports whether the explicit organization id agrees
// with the header-supplied scope. A nil active scope always agrees.
func (rc *RequestContext) ValidateOrganizationScope(explicitOrgID uint) bool {
	if rc.ActiveOrganizationID == nil {
		return true
	}
	return *rc.ActiveOrganizationID == explicitOrgID
}

// IsSystemAdmin reports whether the role grants platform administrator rights.
func IsSystemAdmin(systemRole string) bool {
	return systemRole == constants.SystemRoleAdmin
}

// IsSystemSupport reports whether the role grants platform support rights.
func IsSystemSupport(systemRole string) bool {
	return systemRole == constants.SystemRoleSupport
}

// IsSystemStaff reports whether the role is any platform staff role.
// Staff bypass tenant membership checks on support tickets.
func IsSystemStaff(systemRole string) bool {
	return IsSystemAdmin(systemRole) || IsSystemSupport(systemRole)
}
