package valueobjects

import "fmt"

// Role is a membership role within one organization.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

var validRoles = map[Role]bool{
	RoleOwner:  true,
	RoleAdmin:  true,
	RoleMember: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsOwner() bool {
	return r == RoleOwner
}

// CanManageMembers reports whether the role may invite and remove members.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

// IsAssignable reports whether the role may be granted through an invitation
// or a role change. OWNER is only ever assigned at organization creation.
func (r Role) IsAssignable() bool {
	return r == RoleAdmin || r == RoleMember
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
