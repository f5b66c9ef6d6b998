package organization

import (
	"fmt"
	"time"
)

// Organization is a tenant. It always has exactly one owner, and the owner
// always holds a corresponding membership with role OWNER.
type Organization struct {
	id           uint
	name         string
	slug         string
	logo         string
	website      string
	billingEmail string
	billingName  string
	ownerID      uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOrganization(name, slug string, ownerID uint) (*Organization, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("organization name must be at least 2 characters")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("organization name exceeds maximum length of 100 characters")
	}
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now().UTC()
	return &Organization{
		name:      name,
		slug:      slug,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrganization(
	id uint,
	name string,
	slug string,
	logo string,
	website string,
	billingEmail string,
	billingName string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Organization{
		id:           id,
		name:         name,
		slug:         slug,
		logo:         logo,
		website:      website,
		billingEmail: billingEmail,
		billingName:  billingName,
		ownerID:      ownerID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (o *Organization) ID() uint {
	return o.id
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) Slug() string {
	return o.slug
}

func (o *Organization) Logo() string {
	return o.logo
}

func (o *Organization) Website() string {
	return o.website
}

func (o *Organization) BillingEmail() string {
	return o.billingEmail
}

func (o *Organization) BillingName() string {
	return o.billingName
}

func (o *Organization) OwnerID() uint {
	return o.ownerID
}

func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Organization) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

// IsOwnedBy reports whether the given user is the organization owner.
func (o *Organization) IsOwnedBy(userID uint) bool {
	return o.ownerID == userID
}

// ProfilePatch carries the mutable organization fields. Nil pointers leave
// the corresponding field untouched; the slug and owner are never patched
// through this path.
type ProfilePatch struct {
	Name         *string
	Logo         *string
	Website      *string
	BillingEmail *string
	BillingName  *string
}

// ApplyPatch updates the mutable profile and billing fields.
func (o *Organization) ApplyPatch(patch ProfilePatch) error {
	if patch.Name != nil {
		if len(*patch.Name) < 2 {
			return fmt.Errorf("organization name must be at least 2 characters")
		}
		if len(*patch.Name) > 100 {
			return fmt.Errorf("organization name exceeds maximum length of 100 characters")
		}
		o.name = *patch.Name
	}
	if patch.Logo != nil {
		o.logo = *patch.Logo
	}
	if patch.Website != nil {
		o.website = *patch.Website
	}
	if patch.BillingEmail != nil {
		o.billingEmail = *patch.BillingEmail
	}
	if patch.BillingName != nil {
		o.billingName = *patch.BillingName
	}
	o.updatedAt = time.Now().UTC()
	return nil
}
