package valueobjects

import "fmt"

// InvitationStatus tracks the lifecycle of an invitation. The status is
// monotonic: PENDING may move to any terminal state, terminal states never
// transition again.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationExpired  InvitationStatus = "EXPIRED"
	InvitationRevoked  InvitationStatus = "REVOKED"
)

var validInvitationStatuses = map[InvitationStatus]bool{
	InvitationPending:  true,
	InvitationAccepted: true,
	InvitationExpired:  true,
	InvitationRevoked:  true,
}

var invitationStatusTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationPending: {
		InvitationAccepted,
		InvitationExpired,
		InvitationRevoked,
	},
}

func (s InvitationStatus) String() string {
	return string(s)
}

func (s InvitationStatus) IsValid() bool {
	return validInvitationStatuses[s]
}

func (s InvitationStatus) IsPending() bool {
	return s == InvitationPending
}

// IsTerminal reports whether the status can never change again.
func (s InvitationStatus) IsTerminal() bool {
	return s.IsValid() && s != InvitationPending
}

// Describe returns the past-tense wording used in user-facing messages.
func (s InvitationStatus) Describe() string {
	switch s {
	case InvitationAccepted:
		return "accepted"
	case InvitationExpired:
		return "expired"
	case InvitationRevoked:
		return "revoked"
	default:
		return "processed"
	}
}

func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewInvitationStatus(s string) (InvitationStatus, error) {
	status := InvitationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid invitation status: %s", s)
	}
	return status, nil
}
