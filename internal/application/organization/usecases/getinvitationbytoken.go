package usecases

import (
	"context"
	"time"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type GetInvitationByTokenQuery struct {
	Token string
}

// GetInvitationByTokenUseCase serves the public pre-login invitation page.
// It needs no principal, flips overdue PENDING invitations to EXPIRED before
// answering, and exposes only the public projection of the organization.
type GetInvitationByTokenUseCase struct {
	orgRepo        organization.Repository
	invitationRepo organization.InvitationRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetInvitationByTokenUseCase(
	orgRepo organization.Repository,
	invitationRepo organization.InvitationRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetInvitationByTokenUseCase {
	return &GetInvitationByTokenUseCase{
		orgRepo:        orgRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetInvitationByTokenUseCase) Execute(ctx context.Context, query GetInvitationByTokenQuery) (*dto.PublicInvitationDTO, error) {
	if query.Token == "" {
		return nil, errors.NewValidationError("token is required")
	}

	invitation, err := uc.invitationRepo.GetByToken(ctx, query.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("invitation not found")
		}
		return nil, errors.WrapInternal(err, "failed to load invitation")
	}

	if invitation.Status().IsPending() && invitation.IsExpiredAt(time.Now().UTC()) {
		if err := invitation.MarkExpired(); err == nil {
			if err := uc.invitationRepo.Update(ctx, invitation); err != nil {
				uc.logger.Warnw("failed to persist invitation expiry", "invitation_id", invitation.ID(), "error", err)
			}
		}
	}

	org, err := uc.orgRepo.GetByID(ctx, invitation.OrganizationID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.WrapInternal(err, "failed to load organization")
	}

	inviter, err := uc.userRepo.GetByID(ctx, invitation.InviterID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.WrapInternal(err, "failed to load inviter")
	}

	return dto.ToPublicInvitationDTO(invitation, org, inviter), nil
}
