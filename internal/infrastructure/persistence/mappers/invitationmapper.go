package mappers

import (
	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/infrastructure/persistence/models"
)

// InvitationMapper handles the conversion between Invitation domain entities and persistence models.
type InvitationMapper interface {
	ToModel(i *organization.Invitation) *models.InvitationModel
	ToDomain(model *models.InvitationModel) (*organization.Invitation, error)
}

type InvitationMapperImpl struct{}

func NewInvitationMapper() InvitationMapper {
	return &InvitationMapperImpl{}
}

func (m *InvitationMapperImpl) ToModel(i *organization.Invitation) *models.InvitationModel {
	return &models.InvitationModel{
		ID:             i.ID(),
		Email:          i.Email(),
		Token:          i.Token(),
		Role:           i.Role().String(),
		Status:         i.Status().String(),
		ExpiresAt:      i.ExpiresAt().UnixMilli(),
		OrganizationID: i.OrganizationID(),
		InviterID:      i.InviterID(),
		CreatedAt:      i.CreatedAt().UnixMilli(),
		UpdatedAt:      i.UpdatedAt().UnixMilli(),
	}
}

func (m *InvitationMapperImpl) ToDomain(model *models.InvitationModel) (*organization.Invitation, error) {
	return organization.ReconstructInvitation(
		model.ID,
		model.Email,
		model.Token,
		vo.Role(model.Role),
		vo.InvitationStatus(model.Status),
		millisToTime(model.ExpiresAt),
		model.OrganizationID,
		model.InviterID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
