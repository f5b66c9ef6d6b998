package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type RemoveUserCommand struct {
	ActorID        uint
	OrganizationID uint
	UserID         uint
}

type RemoveUserUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	userRepo       user.Repository
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewRemoveUserUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	userRepo user.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *RemoveUserUseCase {
	return &RemoveUserUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *RemoveUserUseCase) Execute(ctx context.Context, cmd RemoveUserCommand) error {
	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("organization not found")
		}
		return errors.WrapInternal(err, "failed to load organization")
	}

	if org.IsOwnedBy(cmd.UserID) {
		return errors.NewForbiddenError("the organization owner cannot be removed")
	}

	// Self-leave is always allowed; removing someone else needs a manager.
	if cmd.ActorID != cmd.UserID {
		if _, err := requireManager(ctx, uc.membershipRepo, cmd.ActorID, cmd.OrganizationID); err != nil {
			return err
		}
	}

	if _, err := uc.membershipRepo.Get(ctx, cmd.UserID, cmd.OrganizationID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("membership not found")
		}
		return errors.WrapInternal(err, "failed to load membership")
	}

	removed, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.WrapInternal(err, "failed to load user")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.membershipRepo.Delete(txCtx, cmd.UserID, cmd.OrganizationID); err != nil {
			return errors.WrapInternal(err, "failed to delete membership")
		}

		if removed.DefaultOrganizationID() != nil && *removed.DefaultOrganizationID() == cmd.OrganizationID {
			if err := uc.reassignDefault(txCtx, removed, cmd.OrganizationID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.logger.Infow("user removed from organization",
		"organization_id", cmd.OrganizationID,
		"user_id", cmd.UserID,
		"actor_id", cmd.ActorID,
		"self_leave", cmd.ActorID == cmd.UserID,
	)
	return nil
}

func (uc *RemoveUserUseCase) reassignDefault(ctx context.Context, u *user.User, removedOrgID uint) error {
	memberships, err := uc.membershipRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return errors.WrapInternal(err, "failed to list user memberships")
	}

	reassigned := false
	for _, m := range memberships {
		if m.OrganizationID() == removedOrgID {
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
