package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type UpdateUserRoleCommand struct {
	ActorID        uint
	OrganizationID uint
	UserID         uint
	Role           string
}

type UpdateUserRoleUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	logger         logger.Interface
}

func NewUpdateUserRoleUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	logger logger.Interface,
) *UpdateUserRoleUseCase {
	return &UpdateUserRoleUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *UpdateUserRoleUseCase) Execute(ctx context.Context, cmd UpdateUserRoleCommand) error {
	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !role.IsAssignable() {
		return errors.NewValidationError("role must be MEMBER or ADMIN")
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("organization not found")
		}
		return errors.WrapInternal(err, "failed to load organization")
	}

	// Strictly the owner: tenant admins cannot promote or demote.
	actorMembership, err := requireMembership(ctx, uc.membershipRepo, cmd.ActorID, cmd.OrganizationID)
	if err != nil {
		return err
	}
	if !actorMembership.Role().IsOwner() {
		return errors.NewForbiddenError("only the organization owner can change member roles")
	}

	if org.IsOwnedBy(cmd.UserID) {
		return errors.NewForbiddenError("the owner role cannot be changed")
	}

	membership, err := uc.membershipRepo.Get(ctx, cmd.UserID, cmd.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("membership not found")
		}
		return errors.WrapInternal(err, "failed to load membership")
	}

	if err := membership.ChangeRole(role); err != nil {
		return errors.NewBadRequestError(err.Error())
	}
	if err := uc.membershipRepo.Update(ctx, membership); err != nil {
		return errors.WrapInternal(err, "failed to update membership")
	}

	uc.logger.Infow("member role updated",
		"organization_id", cmd.OrganizationID,
		"user_id", cmd.UserID,
		"role", role.String(),
		"actor_id", cmd.ActorID,
	)
	return nil
}
