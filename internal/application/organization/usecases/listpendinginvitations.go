package usecases

import (
	"context"
	"time"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type ListPendingInvitationsQuery struct {
	ActorID        uint
	OrganizationID uint
}

type ListPendingInvitationsUseCase struct {
	membershipRepo organization.MembershipRepository
	invitationRepo organization.InvitationRepository
	logger         logger.Interface
}

func NewListPendingInvitationsUseCase(
	membershipRepo organization.MembershipRepository,
	invitationRepo organization.InvitationRepository,
	logger logger.Interface,
) *ListPendingInvitationsUseCase {
	return &ListPendingInvitationsUseCase{
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		logger:         logger,
	}
}

func (uc *ListPendingInvitationsUseCase) Execute(ctx context.Context, query ListPendingInvitationsQuery) ([]*dto.InvitationDTO, error) {
	if _, err := requireManager(ctx, uc.membershipRepo, query.ActorID, query.OrganizationID); err != nil {
		return nil, err
	}

	invitations, err := uc.invitationRepo.ListPendingByOrganization(ctx, query.OrganizationID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to list invitations")
	}

	// Reads bound the staleness window: overdue invitations flip to EXPIRED
	// here and drop out of the pending list.
	now := time.Now().UTC()
	result := make([]*dto.InvitationDTO, 0, len(invitations))
	for _, inv := range invitations {
		if inv.IsExpiredAt(now) {
			if err := inv.MarkExpired(); err == nil {
				if err := uc.invitationRepo.Update(ctx, inv); err != nil {
					uc.logger.Warnw("failed to persist invitation expiry", "invitation_id", inv.ID(), "error", err)
				}
			}
			continue
		}
		result = append(result, dto.ToInvitationDTO(inv))
	}
	return result, nil
}
