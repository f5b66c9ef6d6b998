package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type RevokeInvitationCommand struct {
	ActorID      uint
	InvitationID uint
}

type RevokeInvitationUseCase struct {
	membershipRepo organization.MembershipRepository
	invitationRepo organization.InvitationRepository
	logger         logger.Interface
}

func NewRevokeInvitationUseCase(
	membershipRepo organization.MembershipRepository,
	invitationRepo organization.InvitationRepository,
	logger logger.Interface,
) *RevokeInvitationUseCase {
	return &RevokeInvitationUseCase{
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		logger:         logger,
	}
}

func (uc *RevokeInvitationUseCase) Execute(ctx context.Context, cmd RevokeInvitationCommand) error {
	invitation, err := uc.invitationRepo.GetByID(ctx, cmd.InvitationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("invitation not found")
		}
		return errors.WrapInternal(err, "failed to load invitation")
	}

	if _, err := requireManager(ctx, uc.membershipRepo, cmd.ActorID, invitation.OrganizationID()); err != nil {
		return err
	}

	if err := invitation.Revoke(); err != nil {
		return errors.NewBadRequestError(err.Error())
	}
	if err := uc.invitationRepo.Update(ctx, invitation); err != nil {
		return errors.WrapInternal(err, "failed to update invitation")
	}

	uc.logger.Infow("invitation revoked",
		"invitation_id", cmd.InvitationID,
		"organization_id", invitation.OrganizationID(),
		"actor_id", cmd.ActorID,
	)
	return nil
}
