package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type ListOrganizationsQuery struct {
	ActorID uint
}

// ListOrganizationsUseCase returns the organizations the actor belongs to.
type ListOrganizationsUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewListOrganizationsUseCase(orgRepo organization.Repository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context, query ListOrganizationsQuery) ([]*dto.OrganizationDTO, error) {
	orgs, err := uc.orgRepo.ListByUser(ctx, query.ActorID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to list organizations")
	}

	result := make([]*dto.OrganizationDTO, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, dto.ToOrganizationDTO(org))
	}
	return result, nil
}
