package dto

import (
	"time"

	"crewdesk/internal/domain/user"
)

type UserDTO struct {
	ID                    uint      `json:"id"`
	Email                 string    `json:"email"`
	Name                  string    `json:"name"`
	Image                 string    `json:"image,omitempty"`
	SystemRole            string    `json:"system_role"`
	DefaultOrganizationID *uint     `json:"default_organization_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:                    u.ID(),
		Email:                 u.Email(),
		Name:                  u.Name(),
		Image:                 u.Image(),
		SystemRole:            u.SystemRole().String(),
		DefaultOrganizationID: u.DefaultOrganizationID(),
		CreatedAt:             u.CreatedAt(),
		UpdatedAt:             u.UpdatedAt(),
	}
}
