package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type GetOrganizationQuery struct {
	ActorID        uint
	OrganizationID uint
}

type GetOrganizationUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	logger         logger.Interface
}

func NewGetOrganizationUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	logger logger.Interface,
) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, query GetOrganizationQuery) (*dto.OrganizationDTO, error) {
	if _, err := requireMembership(ctx, uc.membershipRepo, query.ActorID, query.OrganizationID); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, query.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, errors.WrapInternal(err, "failed to load organization")
	}
	return dto.ToOrganizationDTO(org), nil
}
