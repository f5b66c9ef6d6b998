package queue

import (
	"context"

	"crewdesk/internal/domain/organization"
)

// AsyncInvitationNotifier satisfies the application's notifier contract by
// deferring actual SMTP delivery to the worker.
type AsyncInvitationNotifier struct {
	client *Client
}

func NewAsyncInvitationNotifier(client *Client) *AsyncInvitationNotifier {
	return &AsyncInvitationNotifier{client: client}
}

func (n *AsyncInvitationNotifier) SendInvitation(ctx context.Context, invitation *organization.Invitation, organizationName, inviterName string) error {
	return n.client.EnqueueInvitationEmail(ctx, InvitationEmailPayload{
		InvitationID:     invitation.ID(),
		OrganizationName: organizationName,
		InviterName:      inviterName,
	})
}
