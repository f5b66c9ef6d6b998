package organization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "crewdesk/internal/domain/organization/valueobjects"
)

func TestNewMembership(t *testing.T) {
	m, err := NewMembership(1, 2, vo.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, uint(1), m.UserID())
	assert.Equal(t, uint(2), m.OrganizationID())
	assert.Equal(t, vo.RoleMember, m.Role())

	_, err = NewMembership(0, 2, vo.RoleMember)
	assert.Error(t, err)
	_, err = NewMembership(1, 0, vo.RoleMember)
	assert.Error(t, err)
}

func TestMembership_ChangeRole(t *testing.T) {
	m, err := NewMembership(1, 2, vo.RoleMember)
	require.NoError(t, err)

	require.NoError(t, m.ChangeRole(vo.RoleAdmin))
	assert.Equal(t, vo.RoleAdmin, m.Role())

	assert.Error(t, m.ChangeRole(vo.RoleOwner), "ownership is not granted through role changes")
}

func TestMembership_ChangeRole_OwnerRowIsImmutable(t *testing.T) {
	owner, err := NewMembership(1, 2, vo.RoleOwner)
	require.NoError(t, err)

	assert.Error(t, owner.ChangeRole(vo.RoleAdmin))
	assert.Equal(t, vo.RoleOwner, owner.Role())
}
