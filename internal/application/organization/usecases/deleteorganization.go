package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type DeleteOrganizationCommand struct {
	ActorID        uint
	OrganizationID uint
}

type DeleteOrganizationUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	invitationRepo organization.InvitationRepository
	userRepo       user.Repository
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewDeleteOrganizationUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	invitationRepo organization.InvitationRepository,
	userRepo user.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *DeleteOrganizationUseCase {
	return &DeleteOrganizationUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteOrganizationUseCase) Execute(ctx context.Context, cmd DeleteOrganizationCommand) error {
	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("organization not found")
		}
		return errors.WrapInternal(err, "failed to load organization")
	}

	if !org.IsOwnedBy(cmd.ActorID) {
		return errors.NewForbiddenError("only the organization owner can delete it")
	}

	affected, err := uc.userRepo.ListByDefaultOrganization(ctx, cmd.OrganizationID)
	if err != nil {
		return errors.WrapInternal(err, "failed to list affected users")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Users pointing their default at the doomed org get moved to another
		// membership, or cleared when none remains.
		for _, u := range affected {
			if err := uc.reassignDefault(txCtx, u, cmd.OrganizationID); err != nil {
				return err
			}
		}

		if err := uc.invitationRepo.DeleteByOrganization(txCtx, cmd.OrganizationID); err != nil {
			return errors.WrapInternal(err, "failed to delete invitations")
		}
		if err := uc.membershipRepo.DeleteByOrganization(txCtx, cmd.OrganizationID); err != nil {
			return errors.WrapInternal(err, "failed to delete memberships")
		}
		if err := uc.orgRepo.Delete(txCtx, cmd.OrganizationID); err != nil {
			return errors.WrapInternal(err, "failed to delete organization")
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.logger.Infow("organization deleted",
		"organization_id", cmd.OrganizationID,
		"actor_id", cmd.ActorID,
		"reassigned_defaults", len(affected),
	)
	return nil
}

func (uc *DeleteOrganizationUseCase) reassignDefault(ctx context.Context, u *user.User, deletedOrgID uint) error {
	memberships, err := uc.membershipRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return errors.WrapInternal(err, "failed to list user memberships")
	}

	reassigned := false
	for _, m := range memberships {
		if m.OrganizationID() == deletedOrgID {
			continue
		}
		if err := u.AssignDefaultOrganization(m.OrganizationID()); err != nil {
			return errors.NewInternalError(err.Error())
		}
		reassigned = true
		break
	}
	if !reassigned {
		u.ClearDefaultOrganization()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return errors.WrapInternal(err, "failed to update user default organization")
	}
	return nil
}
