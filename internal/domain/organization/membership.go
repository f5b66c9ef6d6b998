package organization

import (
	"fmt"
	"time"

	vo "crewdesk/internal/domain/organization/valueobjects"
)

// Membership is the join between a user and an organization. Uniqueness per
// (user, organization) is enforced by the store, not just checked here.
type Membership struct {
	userID         uint
	organizationID uint
	role           vo.Role
	createdAt      time.Time
}

func NewMembership(userID, organizationID uint, role vo.Role) (*Membership, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Membership{
		userID:         userID,
		organizationID: organizationID,
		role:           role,
		createdAt:      time.Now().UTC(),
	}, nil
}

func ReconstructMembership(userID, organizationID uint, role vo.Role, createdAt time.Time) (*Membership, error) {
	if userID == 0 || organizationID == 0 {
		return nil, fmt.Errorf("membership keys cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Membership{
		userID:         userID,
		organizationID: organizationID,
		role:           role,
		createdAt:      createdAt,
	}, nil
}

func (m *Membership) UserID() uint {
	return m.userID
}

func (m *Membership) OrganizationID() uint {
	return m.organizationID
}

func (m *Membership) Role() vo.Role {
	return m.role
}

func (m *Membership) JoinedAt() time.Time {
	return m.createdAt
}

// ChangeRole assigns a new membership role. The owner row never changes role
// through this path; OWNER itself is not assignable.
func (m *Membership) ChangeRole(role vo.Role) error {
	if !role.IsAssignable() {
		return fmt.Errorf("role %s cannot be assigned", role)
	}
	if m.role.IsOwner() {
		return fmt.Errorf("the owner membership cannot change role")
	}
	m.role = role
	return nil
}
