package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidOrganization(t *testing.T) *Organization {
	t.Helper()
	org, err := NewOrganization("Acme Corp", "acme-corp", 1)
	require.NoError(t, err)
	return org
}

func TestNewOrganization(t *testing.T) {
	tests := []struct {
		name    string
		orgName string
		slug    string
		ownerID uint
		wantErr bool
	}{
		{name: "valid", orgName: "Acme Corp", slug: "acme-corp", ownerID: 1},
		{name: "name too short", orgName: "A", slug: "acme", ownerID: 1, wantErr: true},
		{name: "invalid slug", orgName: "Acme", slug: "Acme Corp", ownerID: 1, wantErr: true},
		{name: "missing owner", orgName: "Acme", slug: "acme", ownerID: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, err := NewOrganization(tt.orgName, tt.slug, tt.ownerID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, org)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.orgName, org.Name())
			assert.Equal(t, tt.slug, org.Slug())
			assert.Equal(t, tt.ownerID, org.OwnerID())
		})
	}
}

func TestOrganization_SetID(t *testing.T) {
	org := newValidOrganization(t)

	require.NoError(t, org.SetID(7))
	assert.Equal(t, uint(7), org.ID())

	assert.Error(t, org.SetID(8), "ID must not be reassignable")
	assert.Error(t, newValidOrganization(t).SetID(0))
}

func TestOrganization_IsOwnedBy(t *testing.T) {
	org := newValidOrganization(t)
	assert.True(t, org.IsOwnedBy(1))
	assert.False(t, org.IsOwnedBy(2))
}

func TestOrganization_ApplyPatch(t *testing.T) {
	org := newValidOrganization(t)
	before := org.UpdatedAt()
	time.Sleep(time.Millisecond)

	name := "Acme Incorporated"
	logo := "https://cdn.example.com/logo.png"
	require.NoError(t, org.ApplyPatch(ProfilePatch{Name: &name, Logo: &logo}))

	assert.Equal(t, "Acme Incorporated", org.Name())
	assert.Equal(t, logo, org.Logo())
	assert.Equal(t, "", org.Website(), "untouched fields keep their value")
	assert.True(t, org.UpdatedAt().After(before))
}

func TestOrganization_ApplyPatch_RejectsInvalidName(t *testing.T) {
	org := newValidOrganization(t)
	bad := "X"
	assert.Error(t, org.ApplyPatch(ProfilePatch{Name: &bad}))
	assert.Equal(t, "Acme Corp", org.Name(), "failed patch must not partially apply")
}
