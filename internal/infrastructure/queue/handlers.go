package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	orgUsecases "crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

// OrgBootstrapHandler processes org:bootstrap tasks. The underlying use case
// is idempotent, so redeliveries are safe.
type OrgBootstrapHandler struct {
	bootstrap orgUsecases.CreateDefaultOrganizationExecutor
	logger    logger.Interface
}

func NewOrgBootstrapHandler(bootstrap orgUsecases.CreateDefaultOrganizationExecutor, log logger.Interface) *OrgBootstrapHandler {
	return &OrgBootstrapHandler{
		bootstrap: bootstrap,
		logger:    log,
	}
}

func (h *OrgBootstrapHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload OrgBootstrapPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A malformed payload will never parse on retry either.
		return fmt.Errorf("unmarshal %s payload: %v: %w", TypeOrgBootstrap, err, asynq.SkipRetry)
	}

	err := h.bootstrap.Execute(ctx, orgUsecases.CreateDefaultOrganizationCommand{
		UserID: payload.UserID,
		Name:   payload.Name,
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			// The user was deleted between signup and the worker picking
			// this up. Retrying cannot bring them back.
			h.logger.Warnw("skipping bootstrap for missing user", "user_id", payload.UserID)
			return nil
		}
		return fmt.Errorf("bootstrap default organization for user %d: %w", payload.UserID, err)
	}

	return nil
}

// InvitationEmailHandler processes email:invitation tasks. It reloads the
// invitation so a revoke that raced the delivery wins.
type InvitationEmailHandler struct {
	invitationRepo organization.InvitationRepository
	sender         orgUsecases.InvitationNotifier
	logger         logger.Interface
}

func NewInvitationEmailHandler(
	invitationRepo organization.InvitationRepository,
	sender orgUsecases.InvitationNotifier,
	log logger.Interface,
) *InvitationEmailHandler {
	return &InvitationEmailHandler{
		invitationRepo: invitationRepo,
		sender:         sender,
		logger:         log,
	}
}

func (h *InvitationEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload InvitationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal %s payload: %v: %w", TypeInvitationEmail, err, asynq.SkipRetry)
	}

	invitation, err := h.invitationRepo.GetByID(ctx, payload.InvitationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			h.logger.Warnw("skipping email for missing invitation", "invitation_id", payload.InvitationID)
			return nil
		}
		return fmt.Errorf("load invitation %d: %w", payload.InvitationID, err)
	}

	if invitation.Status() != vo.InvitationPending {
		h.logger.Infow("skipping email for non-pending invitation",
			"invitation_id", invitation.ID(),
			"status", invitation.Status().String(),
		)
		return nil
	}

	if err := h.sender.SendInvitation(ctx, invitation, payload.OrganizationName, payload.InviterName); err != nil {
		return fmt.Errorf("send invitation email %d: %w", invitation.ID(), err)
	}

	h.logger.Infow("invitation email sent",
		"invitation_id", invitation.ID(),
		"email", invitation.Email(),
	)
	return nil
}
