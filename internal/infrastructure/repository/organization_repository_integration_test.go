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

func newTestOrganization(t *testing.T, name, slug string, ownerID uint) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(name, slug, ownerID)
	require.NoError(t, err)
	return org
}

func TestOrganizationRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOrganizationRepository(database)
	ctx := context.Background()

	t.Run("save assigns an id", func(t *testing.T) {
		org := newTestOrganization(t, "Acme", "acme", 1)
		err := repo.Save(ctx, org)
		assert.NoError(t, err)
		assert.NotZero(t, org.ID())
	})

	t.Run("duplicate slug hits the unique index", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestOrganization(t, "First", "taken", 1)))

		err := repo.Save(ctx, newTestOrganization(t, "Second", "taken", 2))
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})
}

func TestOrganizationRepository_Lookups(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOrganizationRepository(database)
	ctx := context.Background()

	org := newTestOrganization(t, "Globex", "globex", 1)
	require.NoError(t, repo.Save(ctx, org))

	t.Run("get by slug", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "globex")
		assert.NoError(t, err)
		assert.Equal(t, org.ID(), found.ID())
		assert.Equal(t, "Globex", found.Name())
	})

	t.Run("slug exists", func(t *testing.T) {
		exists, err := repo.SlugExists(ctx, "globex")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SlugExists(ctx, "free-slug")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing organization returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestOrganizationRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOrganizationRepository(database)
	ctx := context.Background()

	org := newTestOrganization(t, "Initech", "initech", 1)
	require.NoError(t, repo.Save(ctx, org))

	name := "Initech Global"
	billing := "billing@initech.example.com"
	require.NoError(t, org.ApplyPatch(organization.ProfilePatch{Name: &name, BillingEmail: &billing}))

	err := repo.Update(ctx, org)
	assert.NoError(t, err)

	found, err := repo.GetByID(ctx, org.ID())
	assert.NoError(t, err)
	assert.Equal(t, "Initech Global", found.Name())
	assert.Equal(t, "billing@initech.example.com", found.BillingEmail())
}

func TestOrganizationRepository_ListByUser(t *testing.T) {
	database := setupTestDB(t)
	orgRepo := NewOrganizationRepository(database)
	membershipRepo := NewMembershipRepository(database)
	ctx := context.Background()

	mine := newTestOrganization(t, "Mine", "mine", 1)
	shared := newTestOrganization(t, "Shared", "shared", 2)
	other := newTestOrganization(t, "Other", "other", 3)
	for _, org := range []*organization.Organization{mine, shared, other} {
		require.NoError(t, orgRepo.Save(ctx, org))
	}

	require.NoError(t, membershipRepo.Save(ctx, newTestMembership(t, 1, mine.ID(), vo.RoleOwner)))
	require.NoError(t, membershipRepo.Save(ctx, newTestMembership(t, 1, shared.ID(), vo.RoleMember)))
	require.NoError(t, membershipRepo.Save(ctx, newTestMembership(t, 3, other.ID(), vo.RoleOwner)))

	orgs, err := orgRepo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, orgs, 2)

	slugs := []string{orgs[0].Slug(), orgs[1].Slug()}
	assert.ElementsMatch(t, []string{"mine", "shared"}, slugs)
}

func TestOrganizationRepository_Delete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOrganizationRepository(database)
	ctx := context.Background()

	org := newTestOrganization(t, "Doomed", "doomed", 1)
	require.NoError(t, repo.Save(ctx, org))

	err := repo.Delete(ctx, org.ID())
	assert.NoError(t, err)

	_, err = repo.GetByID(ctx, org.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, org.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
