package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type UpdateOrganizationCommand struct {
	ActorID        uint
	OrganizationID uint
	Name           *string
	Logo           *string
	Website        *string
	BillingEmail   *string
	BillingName    *string
}

type UpdateOrganizationUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	logger         logger.Interface
}

func NewUpdateOrganizationUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	logger logger.Interface,
) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if _, err := requireManager(ctx, uc.membershipRepo, cmd.ActorID, cmd.OrganizationID); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, errors.WrapInternal(err, "failed to load organization")
	}

	patch := organization.ProfilePatch{
		Name:         cmd.Name,
		Logo:         cmd.Logo,
		Website:      cmd.Website,
		BillingEmail: cmd.BillingEmail,
		BillingName:  cmd.BillingName,
	}
	if err := org.ApplyPatch(patch); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orgRepo.Update(ctx, org); err != nil {
		return nil, errors.WrapInternal(err, "failed to update organization")
	}

	uc.logger.Infow("organization updated", "organization_id", org.ID(), "actor_id", cmd.ActorID)
	return dto.ToOrganizationDTO(org), nil
}
