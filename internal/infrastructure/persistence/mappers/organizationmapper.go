package mappers

import (
	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles the conversion between Organization domain
// entities (and their memberships) and persistence models.
type OrganizationMapper interface {
	ToModel(org *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
	MembershipToModel(m *organization.Membership) *models.MembershipModel
	MembershipToDomain(model *models.MembershipModel) (*organization.Membership, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(org *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:           org.ID(),
		Name:         org.Name(),
		Slug:         org.Slug(),
		Logo:         org.Logo(),
		Website:      org.Website(),
		BillingEmail: org.BillingEmail(),
		BillingName:  org.BillingName(),
		OwnerID:      org.OwnerID(),
		CreatedAt:    org.CreatedAt().UnixMilli(),
		UpdatedAt:    org.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Slug,
		model.Logo,
		model.Website,
		model.BillingEmail,
		model.BillingName,
		model.OwnerID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *OrganizationMapperImpl) MembershipToModel(membership *organization.Membership) *models.MembershipModel {
	return &models.MembershipModel{
		UserID:         membership.UserID(),
		OrganizationID: membership.OrganizationID(),
		Role:           membership.Role().String(),
		CreatedAt:      membership.JoinedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) MembershipToDomain(model *models.MembershipModel) (*organization.Membership, error) {
	return organization.ReconstructMembership(
		model.UserID,
		model.OrganizationID,
		vo.Role(model.Role),
		millisToTime(model.CreatedAt),
	)
}
