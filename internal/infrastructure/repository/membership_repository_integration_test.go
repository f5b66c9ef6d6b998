package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/shared/errors"
)

func newTestMembership(t *testing.T, userID, organizationID uint, role vo.Role) *organization.Membership {
	t.Helper()
	m, err := organization.NewMembership(userID, organizationID, role)
	require.NoError(t, err)
	return m
}

func TestMembershipRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMembershipRepository(database)
	ctx := context.Background()

	t.Run("save new membership", func(t *testing.T) {
		err := repo.Save(ctx, newTestMembership(t, 1, 10, vo.RoleOwner))
		assert.NoError(t, err)

		found, err := repo.Get(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, vo.RoleOwner, found.Role())
	})

	t.Run("same user in two organizations", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 2, 10, vo.RoleMember)))
		err := repo.Save(ctx, newTestMembership(t, 2, 11, vo.RoleMember))
		assert.NoError(t, err)
	})

	t.Run("duplicate user and organization hits the unique index", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 3, 10, vo.RoleMember)))

		// Two concurrent accepts of the same invitation both pass the
		// read-side check; the second insert must lose here.
		err := repo.Save(ctx, newTestMembership(t, 3, 10, vo.RoleAdmin))
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})
}

func TestMembershipRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMembershipRepository(database)
	ctx := context.Background()

	t.Run("change role", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 1, 10, vo.RoleMember)))

		m, err := repo.Get(ctx, 1, 10)
		require.NoError(t, err)
		require.NoError(t, m.ChangeRole(vo.RoleAdmin))

		err = repo.Update(ctx, m)
		assert.NoError(t, err)

		found, err := repo.Get(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, vo.RoleAdmin, found.Role())
	})

	t.Run("missing membership returns not found", func(t *testing.T) {
		err := repo.Update(ctx, newTestMembership(t, 99, 99, vo.RoleMember))
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestMembershipRepository_Delete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMembershipRepository(database)
	ctx := context.Background()

	t.Run("delete existing membership", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 1, 10, vo.RoleMember)))

		err := repo.Delete(ctx, 1, 10)
		assert.NoError(t, err)

		_, err = repo.Get(ctx, 1, 10)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("delete missing membership returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, 42, 42)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("delete by organization removes every member", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 5, 20, vo.RoleOwner)))
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 6, 20, vo.RoleMember)))
		require.NoError(t, repo.Save(ctx, newTestMembership(t, 5, 21, vo.RoleOwner)))

		err := repo.DeleteByOrganization(ctx, 20)
		assert.NoError(t, err)

		count, err := repo.CountByOrganization(ctx, 20)
		assert.NoError(t, err)
		assert.Zero(t, count)

		// Membership in another organization is untouched.
		_, err = repo.Get(ctx, 5, 21)
		assert.NoError(t, err)
	})
}

func TestMembershipRepository_Counts(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMembershipRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestMembership(t, 1, 10, vo.RoleOwner)))
	require.NoError(t, repo.Save(ctx, newTestMembership(t, 2, 10, vo.RoleAdmin)))
	require.NoError(t, repo.Save(ctx, newTestMembership(t, 3, 10, vo.RoleMember)))

	total, err := repo.CountByOrganization(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	owners, err := repo.CountByRole(ctx, 10, vo.RoleOwner)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), owners)

	members, err := repo.CountByRole(ctx, 10, vo.RoleMember)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), members)
}
