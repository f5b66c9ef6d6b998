package organization

import (
	"fmt"
	"strings"
	"time"

	vo "crewdesk/internal/domain/organization/valueobjects"
)

// Invitation is a time-boxed offer to join an organization, addressed to an
// email address and redeemed through an unguessable token. Invitations are
// never deleted; terminal statuses form the audit trail.
type Invitation struct {
	id             uint
	email          string
	token          string
	role           vo.Role
	status         vo.InvitationStatus
	expiresAt      time.Time
	organizationID uint
	inviterID      uint
	createdAt      time.Time
	updatedAt      time.Time
}

func NewInvitation(email, token string, role vo.Role, organizationID, inviterID uint, ttl time.Duration) (*Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if !role.IsAssignable() {
		return nil, fmt.Errorf("role %s cannot be granted through an invitation", role)
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if inviterID == 0 {
		return nil, fmt.Errorf("inviter ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invitation ttl must be positive")
	}

	now := time.Now().UTC()
	return &Invitation{
		email:          email,
		token:          token,
		role:           role,
		status:         vo.InvitationPending,
		expiresAt:      now.Add(ttl),
		organizationID: organizationID,
		inviterID:      inviterID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructInvitation(
	id uint,
	email string,
	token string,
	role vo.Role,
	status vo.InvitationStatus,
	expiresAt time.Time,
	organizationID uint,
	inviterID uint,
	createdAt, updatedAt time.Time,
) (*Invitation, error) {
	if id == 0 {
		return nil, fmt.Errorf("invitation ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Invitation{
		id:             id,
		email:          email,
		token:          token,
		role:           role,
		status:         status,
		expiresAt:      expiresAt,
		organizationID: organizationID,
		inviterID:      inviterID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Invitation) ID() uint {
	return i.id
}

func (i *Invitation) Email() string {
	return i.email
}

func (i *Invitation) Token() string {
	return i.token
}

func (i *Invitation) Role() vo.Role {
	return i.role
}

func (i *Invitation) Status() vo.InvitationStatus {
	return i.status
}

func (i *Invitation) ExpiresAt() time.Time {
	return i.expiresAt
}

func (i *Invitation) OrganizationID() uint {
	return i.organizationID
}

func (i *Invitation) InviterID() uint {
	return i.inviterID
}

func (i *Invitation) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invitation) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Invitation) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invitation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invitation ID cannot be zero")
	}
	i.id = id
	return nil
}

// IsExpiredAt reports whether the invitation deadline has passed, regardless
// of whether the EXPIRED transition has been persisted yet.
func (i *Invitation) IsExpiredAt(now time.Time) bool {
	return now.After(i.expiresAt)
}

// IsAddressedTo compares the recipient address case-insensitively.
func (i *Invitation) IsAddressedTo(email string) bool {
	return strings.EqualFold(i.email, strings.TrimSpace(email))
}

func (i *Invitation) transition(next vo.InvitationStatus) error {
	if !i.status.CanTransitionTo(next) {
		return fmt.Errorf("invitation is %s and cannot become %s", i.status, next)
	}
	i.status = next
	i.updatedAt = time.Now().UTC()
	return nil
}

// Accept marks a pending invitation accepted.
func (i *Invitation) Accept() error {
	return i.transition(vo.InvitationAccepted)
}

// MarkExpired records the read-time expiry transition.
func (i *Invitation) MarkExpired() error {
	return i.transition(vo.InvitationExpired)
}

// Revoke withdraws a pending invitation. Revoking an already-terminal
// invitation is a no-op so the operation stays idempotent.
func (i *Invitation) Revoke() error {
	if i.status.IsTerminal() {
		return nil
	}
	return i.transition(vo.InvitationRevoked)
}
