package usecases

import (
	"context"
	"strings"
	"time"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/goroutine"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type InviteMemberCommand struct {
	ActorID        uint
	ActorName      string
	OrganizationID uint
	Email          string
	Role           string
	ExpiryTTL      time.Duration
}

type InviteMemberUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	invitationRepo organization.InvitationRepository
	userRepo       user.Repository
	tokenGen       organization.TokenGenerator
	notifier       InvitationNotifier
	logger         logger.Interface
}

func NewInviteMemberUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	invitationRepo organization.InvitationRepository,
	userRepo user.Repository,
	tokenGen organization.TokenGenerator,
	notifier InvitationNotifier,
	logger logger.Interface,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		tokenGen:       tokenGen,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *InviteMemberUseCase) Execute(ctx context.Context, cmd InviteMemberCommand) (*dto.InvitationDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if !utils.IsValidEmail(email) {
		return nil, errors.NewValidationError("a valid email address is required")
	}

	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !role.IsAssignable() {
		return nil, errors.NewValidationError("invitation role must be MEMBER or ADMIN")
	}

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

	if err := uc.checkNotAlreadyMember(ctx, email, cmd.OrganizationID); err != nil {
		return nil, err
	}

	existing, err := uc.invitationRepo.GetPendingByEmail(ctx, email, cmd.OrganizationID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.WrapInternal(err, "failed to check pending invitations")
	}
	if existing != nil {
		// A pending invitation past its deadline no longer blocks a new one;
		// flip it on the spot.
		if existing.IsExpiredAt(time.Now().UTC()) {
			if err := existing.MarkExpired(); err == nil {
				if err := uc.invitationRepo.Update(ctx, existing); err != nil {
					return nil, errors.WrapInternal(err, "failed to expire stale invitation")
				}
			}
		} else {
			return nil, errors.NewConflictError("a pending invitation for this email already exists")
		}
	}

	token, err := uc.tokenGen.Generate()
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to generate invitation token")
	}

	invitation, err := organization.NewInvitation(email, token, role, cmd.OrganizationID, cmd.ActorID, cmd.ExpiryTTL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.invitationRepo.Save(ctx, invitation); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a pending invitation for this email already exists")
		}
		return nil, errors.WrapInternal(err, "failed to save invitation")
	}

	// Delivery is fire and forget: the invitation stands even if the email
	// never leaves the building.
	uc.dispatchEmail(invitation, org.Name(), cmd.ActorName)

	uc.logger.Infow("member invited",
		"organization_id", cmd.OrganizationID,
		"email", email,
		"role", role.String(),
		"inviter_id", cmd.ActorID,
	)
	return dto.ToInvitationDTO(invitation), nil
}

func (uc *InviteMemberUseCase) checkNotAlreadyMember(ctx context.Context, email string, organizationID uint) error {
	invitee, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return errors.WrapInternal(err, "failed to look up invitee")
	}

	_, err = uc.membershipRepo.Get(ctx, invitee.ID(), organizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return errors.WrapInternal(err, "failed to check membership")
	}
	return errors.NewConflictError("this user is already a member of the organization")
}

func (uc *InviteMemberUseCase) dispatchEmail(invitation *organization.Invitation, organizationName, inviterName string) {
	goroutine.SafeGo(uc.logger, "invitation-email", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uc.notifier.SendInvitation(ctx, invitation, organizationName, inviterName); err != nil {
			uc.logger.Warnw("failed to send invitation email",
				"invitation_id", invitation.ID(),
				"email", invitation.Email(),
				"error", err,
			)
		}
	})
}
