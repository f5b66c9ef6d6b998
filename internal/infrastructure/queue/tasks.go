package queue

// Task type names registered on both the client and the worker mux.
const (
	TypeOrgBootstrap    = "org:bootstrap"
	TypeInvitationEmail = "email:invitation"
)

// Queue names in priority order.
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// OrgBootstrapPayload carries the minimum needed to create a user's default
// organization. The handler re-reads the user, so stale payloads are harmless.
type OrgBootstrapPayload struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// InvitationEmailPayload identifies the invitation to deliver. Only the ID is
// trusted; the handler reloads the invitation and skips it when it is no
// longer pending.
type InvitationEmailPayload struct {
	InvitationID     uint   `json:"invitation_id"`
	OrganizationName string `json:"organization_name"`
	InviterName      string `json:"inviter_name"`
}
