package dto

import (
	"time"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
)

type OrganizationDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Logo         string    `json:"logo,omitempty"`
	Website      string    `json:"website,omitempty"`
	BillingEmail string    `json:"billing_email,omitempty"`
	BillingName  string    `json:"billing_name,omitempty"`
	OwnerID      uint      `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MemberDTO struct {
	UserID   uint      `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type InvitationDTO struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expires_at"`
	OrganizationID uint      `json:"organization_id"`
	InviterID      uint      `json:"inviter_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// PublicInvitationDTO is the pre-login view served from an email link. It
// deliberately exposes nothing about the organization beyond name, logo and
// who sent the invitation.
type PublicInvitationDTO struct {
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	ExpiresAt        time.Time `json:"expires_at"`
	OrganizationName string    `json:"organization_name"`
	OrganizationLogo string    `json:"organization_logo,omitempty"`
	InviterName      string    `json:"inviter_name"`
}

func ToOrganizationDTO(org *organization.Organization) *OrganizationDTO {
	if org == nil {
		return nil
	}
	return &OrganizationDTO{
		ID:           org.ID(),
		Name:         org.Name(),
		Slug:         org.Slug(),
		Logo:         org.Logo(),
		Website:      org.Website(),
		BillingEmail: org.BillingEmail(),
		BillingName:  org.BillingName(),
		OwnerID:      org.OwnerID(),
		CreatedAt:    org.CreatedAt(),
		UpdatedAt:    org.UpdatedAt(),
	}
}

func ToMemberDTO(m *organization.Membership, u *user.User) MemberDTO {
	d := MemberDTO{
		UserID:   m.UserID(),
		Role:     m.Role().String(),
		JoinedAt: m.JoinedAt(),
	}
	if u != nil {
		d.Email = u.Email()
		d.Name = u.Name()
		d.Image = u.Image()
	}
	return d
}

func ToInvitationDTO(inv *organization.Invitation) *InvitationDTO {
	if inv == nil {
		return nil
	}
	return &InvitationDTO{
		ID:             inv.ID(),
		Email:          inv.Email(),
		Role:           inv.Role().String(),
		Status:         inv.Status().String(),
		ExpiresAt:      inv.ExpiresAt(),
		OrganizationID: inv.OrganizationID(),
		InviterID:      inv.InviterID(),
		CreatedAt:      inv.CreatedAt(),
	}
}

func ToPublicInvitationDTO(inv *organization.Invitation, org *organization.Organization, inviter *user.User) *PublicInvitationDTO {
	if inv == nil {
		return nil
	}
	d := &PublicInvitationDTO{
		Email:     inv.Email(),
		Role:      inv.Role().String(),
		Status:    inv.Status().String(),
		ExpiresAt: inv.ExpiresAt(),
	}
	if org != nil {
		d.OrganizationName = org.Name()
		d.OrganizationLogo = org.Logo()
	}
	if inviter != nil {
		d.InviterName = inviter.Name()
	}
	return d
}
