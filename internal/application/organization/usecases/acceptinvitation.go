package usecases

import (
	"context"
	"fmt"
	"time"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type AcceptInvitationCommand struct {
	ActorID    uint
	ActorEmail string
	Token      string
}

type AcceptInvitationResult struct {
	Organization *dto.OrganizationDTO
	Role         string
}

type AcceptInvitationUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	invitationRepo organization.InvitationRepository
	userRepo       user.Repository
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewAcceptInvitationUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	invitationRepo organization.InvitationRepository,
	userRepo user.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *AcceptInvitationUseCase {
	return &AcceptInvitationUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *AcceptInvitationUseCase) Execute(ctx context.Context, cmd AcceptInvitationCommand) (*AcceptInvitationResult, error) {
	invitation, err := uc.invitationRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("invitation not found")
		}
		return nil, errors.WrapInternal(err, "failed to load invitation")
	}

	if !invitation.Status().IsPending() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("invitation has already been %s", invitation.Status().Describe()))
	}

	if invitation.IsExpiredAt(time.Now().UTC()) {
		if err := invitation.MarkExpired(); err == nil {
			if err := uc.invitationRepo.Update(ctx, invitation); err != nil {
				uc.logger.Warnw("failed to persist invitation expiry", "invitation_id", invitation.ID(), "error", err)
			}
		}
		return nil, errors.NewBadRequestError("invitation has expired")
	}

	if !invitation.IsAddressedTo(cmd.ActorEmail) {
		return nil, errors.NewForbiddenError("this invitation was sent to a different email address")
	}

	// Already a member: the invitation is consumed anyway so it cannot be
	// replayed, and the caller learns why via Conflict.
	if _, err := uc.membershipRepo.Get(ctx, cmd.ActorID, invitation.OrganizationID()); err == nil {
		if aErr := invitation.Accept(); aErr == nil {
			if uErr := uc.invitationRepo.Update(ctx, invitation); uErr != nil {
				uc.logger.Warnw("failed to persist invitation acceptance", "invitation_id", invitation.ID(), "error", uErr)
			}
		}
		return nil, errors.NewConflictError("you are already a member of this organization")
	} else if !errors.IsNotFoundError(err) {
		return nil, errors.WrapInternal(err, "failed to check membership")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load actor")
	}

	// Membership creation and the status flip commit together: a crash in
	// between must not leave a member whose invitation still reads PENDING.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		membership, err := organization.NewMembership(cmd.ActorID, invitation.OrganizationID(), invitation.Role())
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.membershipRepo.Save(txCtx, membership); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("you are already a member of this organization")
			}
			return errors.WrapInternal(err, "failed to save membership")
		}

		if err := invitation.Accept(); err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.invitationRepo.Update(txCtx, invitation); err != nil {
			return errors.WrapInternal(err, "failed to update invitation")
		}

		if !actor.HasDefaultOrganization() {
			if err := actor.AssignDefaultOrganization(invitation.OrganizationID()); err != nil {
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

	org, err := uc.orgRepo.GetByID(ctx, invitation.OrganizationID())
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load organization")
	}

	uc.logger.Infow("invitation accepted",
		"invitation_id", invitation.ID(),
		"organization_id", invitation.OrganizationID(),
		"user_id", cmd.ActorID,
		"role", invitation.Role().String(),
	)
	return &AcceptInvitationResult{
		Organization: dto.ToOrganizationDTO(org),
		Role:         invitation.Role().String(),
	}, nil
}
