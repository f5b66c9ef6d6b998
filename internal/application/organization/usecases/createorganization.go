package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/id"
	"crewdesk/internal/shared/logger"
)

// slugAttempts bounds collision retries before giving up with Conflict.
const slugAttempts = 5

type CreateOrganizationCommand struct {
	ActorID uint
	Name    string
	Slug    string
	Logo    string
	Website string
}

type CreateOrganizationUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	userRepo       user.Repository
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewCreateOrganizationUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	userRepo user.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	slug, err := uc.resolveSlug(ctx, cmd)
	if err != nil {
		return nil, err
	}

	org, err := organization.NewOrganization(cmd.Name, slug, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Logo != "" || cmd.Website != "" {
		patch := organization.ProfilePatch{}
		if cmd.Logo != "" {
			patch.Logo = &cmd.Logo
		}
		if cmd.Website != "" {
			patch.Website = &cmd.Website
		}
		if err := org.ApplyPatch(patch); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load actor")
	}

	// Organization, owner membership and the default-org pointer move as one
	// atomic unit so no crash can leave an organization without its owner row.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orgRepo.Save(txCtx, org); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("organization slug is already taken")
			}
			return errors.WrapInternal(err, "failed to save organization")
		}

		membership, err := organization.NewMembership(cmd.ActorID, org.ID(), vo.RoleOwner)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.membershipRepo.Save(txCtx, membership); err != nil {
			return errors.WrapInternal(err, "failed to save owner membership")
		}

		if !actor.HasDefaultOrganization() {
			if err := actor.AssignDefaultOrganization(org.ID()); err != nil {
				return errors.NewInternalError(err.Error())
			}
			if err := uc.userRepo.Update(txCtx, actor); err != nil {
				return errors.WrapInternal(err, "failed to set default organization")
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("organization created",
		"organization_id", org.ID(),
		"slug", org.Slug(),
		"owner_id", cmd.ActorID,
	)
	return dto.ToOrganizationDTO(org), nil
}

func (uc *CreateOrganizationUseCase) resolveSlug(ctx context.Context, cmd CreateOrganizationCommand) (string, error) {
	if cmd.Slug != "" {
		if !organization.IsValidSlug(cmd.Slug) {
			return "", errors.NewValidationError("slug must contain only lowercase letters, digits and hyphens")
		}
		taken, err := uc.orgRepo.SlugExists(ctx, cmd.Slug)
		if err != nil {
			return "", errors.WrapInternal(err, "failed to check slug")
		}
		if taken {
			return "", errors.NewConflictError("organization slug is already taken")
		}
		return cmd.Slug, nil
	}

	base := organization.Slugify(cmd.Name)
	candidate := base
	for attempt := 0; attempt < slugAttempts; attempt++ {
		taken, err := uc.orgRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.WrapInternal(err, "failed to check slug")
		}
		if !taken {
			return candidate, nil
		}
		suffix, err := id.GenerateLower(id.SlugSuffixLength)
		if err != nil {
			return "", errors.WrapInternal(err, "failed to generate slug suffix")
		}
		candidate = organization.WithSuffix(base, suffix)
	}

	return "", errors.NewConflictError("could not find a free slug for this organization name")
}
