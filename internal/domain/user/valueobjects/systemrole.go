package valueobjects

import "fmt"

// SystemRole is the platform-wide role of a user, distinct from the
// per-organization membership role.
type SystemRole string

const (
	SystemRoleUser    SystemRole = "USER"
	SystemRoleSupport SystemRole = "SUPPORT"
	SystemRoleAdmin   SystemRole = "ADMIN"
)

var validSystemRoles = map[SystemRole]bool{
	SystemRoleUser:    true,
	SystemRoleSupport: true,
	SystemRoleAdmin:   true,
}

func (r SystemRole) String() string {
	return string(r)
}

func (r SystemRole) IsValid() bool {
	return validSystemRoles[r]
}

func (r SystemRole) IsAdmin() bool {
	return r == SystemRoleAdmin
}

func (r SystemRole) IsSupport() bool {
	return r == SystemRoleSupport
}

// IsStaff reports whether the role is a platform staff role (support or admin).
func (r SystemRole) IsStaff() bool {
	return r == SystemRoleAdmin || r == SystemRoleSupport
}

func NewSystemRole(s string) (SystemRole, error) {
	r := SystemRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid system role: %s", s)
	}
	return r, nil
}
