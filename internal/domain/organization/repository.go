package organization

import (
	"context"

	vo "crewdesk/internal/domain/organization/valueobjects"
)

// Repository persists organizations.
type Repository interface {
	Save(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]*Organization, error)
}

// MembershipRepository persists membership rows. The store enforces the
// unique (userID, organizationID) pair.
type MembershipRepository interface {
	Save(ctx context.Context, membership *Membership) error
	Update(ctx context.Context, membership *Membership) error
	Delete(ctx context.Context, userID, organizationID uint) error
	DeleteByOrganization(ctx context.Context, organizationID uint) error
	Get(ctx context.Context, userID, organizationID uint) (*Membership, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*Membership, error)
	ListByUser(ctx context.Context, userID uint) ([]*Membership, error)
	CountByOrganization(ctx context.Context, organizationID uint) (int64, error)
	CountByRole(ctx context.Context, organizationID uint, role vo.Role) (int64, error)
}

// InvitationRepository persists invitations.
type InvitationRepository interface {
	Save(ctx context.Context, invitation *Invitation) error
	Update(ctx context.Context, invitation *Invitation) error
	GetByID(ctx context.Context, id uint) (*Invitation, error)
	GetByToken(ctx context.Context, token string) (*Invitation, error)
	GetPendingByEmail(ctx context.Context, email string, organizationID uint) (*Invitation, error)
	ListPendingByOrganization(ctx context.Context, organizationID uint) ([]*Invitation, error)
	DeleteByOrganization(ctx context.Context, organizationID uint) error
}
