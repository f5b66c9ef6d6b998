package user

import (
	"fmt"
	"strings"
	"time"

	vo "crewdesk/internal/domain/user/valueobjects"
)

// User is an authenticated platform identity. Accounts are created by the
// authentication provider on first sign-in; this aggregate only tracks the
// profile fields and the default-organization bookkeeping that the tenant
// directory mutates.
type User struct {
	id                    uint
	email                 string
	name                  string
	image                 string
	systemRole            vo.SystemRole
	defaultOrganizationID *uint
	createdAt             time.Time
	updatedAt             time.Time
}

func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	return &User{
		email:      email,
		name:       name,
		systemRole: vo.SystemRoleUser,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	name string,
	image string,
	systemRole vo.SystemRole,
	defaultOrganizationID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !systemRole.IsValid() {
		return nil, fmt.Errorf("invalid system role")
	}

	return &User{
		id:                    id,
		email:                 email,
		name:                  name,
		image:                 image,
		systemRole:            systemRole,
		defaultOrganizationID: defaultOrganizationID,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Image() string {
	return u.image
}

func (u *User) SystemRole() vo.SystemRole {
	return u.systemRole
}

func (u *User) DefaultOrganizationID() *uint {
	return u.defaultOrganizationID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// HasDefaultOrganization reports whether the user already has a default
// organization assigned.
func (u *User) HasDefaultOrganization() bool {
	return u.defaultOrganizationID != nil && *u.defaultOrganizationID != 0
}

// AssignDefaultOrganization points the user at a default organization.
func (u *User) AssignDefaultOrganization(organizationID uint) error {
	if organizationID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	u.defaultOrganizationID = &organizationID
	u.updatedAt = time.Now().UTC()
	return nil
}

// ClearDefaultOrganization removes the default organization reference.
func (u *User) ClearDefaultOrganization() {
	u.defaultOrganizationID = nil
	u.updatedAt = time.Now().UTC()
}

// UpdateProfile patches the mutable profile fields. Empty strings leave the
// corresponding field untouched.
func (u *User) UpdateProfile(name, image string) {
	if name != "" {
		u.name = name
	}
	if image != "" {
		u.image = image
	}
	u.updatedAt = time.Now().UTC()
}

// EmailMatches compares the given address case-insensitively.
func (u *User) EmailMatches(email string) bool {
	return strings.EqualFold(u.email, strings.TrimSpace(email))
}
