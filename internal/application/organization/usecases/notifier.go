package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
)

// InvitationNotifier delivers the invitation email. Delivery is best-effort:
// a failed send is logged and never rolls back the invitation itself.
type InvitationNotifier interface {
	SendInvitation(ctx context.Context, invitation *organization.Invitation, organizationName, inviterName string) error
}
