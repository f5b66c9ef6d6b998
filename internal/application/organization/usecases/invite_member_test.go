package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
)

func adminMembership(t *testing.T, userID, orgID uint) *organization.Membership {
	t.Helper()
	m, err := organization.NewMembership(userID, orgID, vo.RoleAdmin)
	require.NoError(t, err)
	return m
}

func memberMembership(t *testing.T, userID, orgID uint) *organization.Membership {
	t.Helper()
	m, err := organization.NewMembership(userID, orgID, vo.RoleMember)
	require.NoError(t, err)
	return m
}

func TestInviteMemberUseCase_Success(t *testing.T) {
	var saved *organization.Invitation
	notifier := newMockNotifier()

	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			return testOrganization(t), nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			if userID == 2 {
				return adminMembership(t, 2, 42), nil
			}
			return nil, errors.NewNotFoundError("membership not found")
		},
	}
	invitationRepo := &mockInvitationRepository{
		GetPendingByEmailFunc: func(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error) {
			return nil, errors.NewNotFoundError("no pending invitation")
		},
		SaveFunc: func(ctx context.Context, inv *organization.Invitation) error {
			saved = inv
			return inv.SetID(11)
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewInviteMemberUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, &mockTokenGenerator{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID:        2,
		ActorName:      "Bob",
		OrganizationID: 42,
		Email:          "Carol@Example.com",
		Role:           "MEMBER",
		ExpiryTTL:      7 * 24 * time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", result.Email)
	assert.Equal(t, "MEMBER", result.Role)
	assert.Equal(t, "PENDING", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, "test-token", saved.Token())
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), saved.ExpiresAt(), time.Minute)

	select {
	case <-notifier.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("invitation email was never dispatched")
	}
}

func TestInviteMemberUseCase_EmailFailureDoesNotRollBack(t *testing.T) {
	notifier := newMockNotifier()
	notifier.SendInvitationFunc = func(ctx context.Context, inv *organization.Invitation, orgName, inviterName string) error {
		return errors.NewInternalError("smtp down")
	}

	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			return testOrganization(t), nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			if userID == 2 {
				return adminMembership(t, 2, 42), nil
			}
			return nil, errors.NewNotFoundError("membership not found")
		},
	}
	invitationRepo := &mockInvitationRepository{
		GetPendingByEmailFunc: func(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error) {
			return nil, errors.NewNotFoundError("no pending invitation")
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewInviteMemberUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, &mockTokenGenerator{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID: 2, OrganizationID: 42, Email: "carol@example.com", Role: "MEMBER", ExpiryTTL: time.Hour,
	})

	require.NoError(t, err, "delivery failure must not fail the invitation")
	assert.Equal(t, "PENDING", result.Status)

	select {
	case <-notifier.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery was never attempted")
	}
}

func TestInviteMemberUseCase_PendingDuplicateConflicts(t *testing.T) {
	pending := pendingInvitation(t, time.Now().UTC().Add(time.Hour))

	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			if userID == 2 {
				return adminMembership(t, 2, 42), nil
			}
			return nil, errors.NewNotFoundError("membership not found")
		},
	}
	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			return testOrganization(t), nil
		},
	}
	invitationRepo := &mockInvitationRepository{
		GetPendingByEmailFunc: func(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error) {
			return pending, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewInviteMemberUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, &mockTokenGenerator{}, newMockNotifier(), &mockLogger{})
	_, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID: 2, OrganizationID: 42, Email: "alice@example.com", Role: "MEMBER", ExpiryTTL: time.Hour,
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestInviteMemberUseCase_ExistingMemberConflicts(t *testing.T) {
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			if userID == 2 {
				return adminMembership(t, 2, 42), nil
			}
			return memberMembership(t, userID, organizationID), nil
		},
	}
	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			return testOrganization(t), nil
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, 30, nil), nil
		},
	}

	uc := NewInviteMemberUseCase(orgRepo, membershipRepo, &mockInvitationRepository{}, userRepo, &mockTokenGenerator{}, newMockNotifier(), &mockLogger{})
	_, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID: 2, OrganizationID: 42, Email: "alice@example.com", Role: "MEMBER", ExpiryTTL: time.Hour,
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestInviteMemberUseCase_PlainMemberForbidden(t *testing.T) {
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			return memberMembership(t, userID, organizationID), nil
		},
	}

	uc := NewInviteMemberUseCase(&mockOrganizationRepository{}, membershipRepo, &mockInvitationRepository{}, &mockUserRepository{}, &mockTokenGenerator{}, newMockNotifier(), &mockLogger{})
	_, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID: 3, OrganizationID: 42, Email: "carol@example.com", Role: "MEMBER", ExpiryTTL: time.Hour,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestInviteMemberUseCase_OwnerRoleRejected(t *testing.T) {
	uc := NewInviteMemberUseCase(&mockOrganizationRepository{}, &mockMembershipRepository{}, &mockInvitationRepository{}, &mockUserRepository{}, &mockTokenGenerator{}, newMockNotifier(), &mockLogger{})
	_, err := uc.Execute(context.Background(), InviteMemberCommand{
		ActorID: 2, OrganizationID: 42, Email: "carol@example.com", Role: "OWNER", ExpiryTTL: time.Hour,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
