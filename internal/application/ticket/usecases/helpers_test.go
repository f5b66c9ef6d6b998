package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/organization"
	orgvo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/constants"
)

func staffActor() Actor {
	return Actor{UserID: 9, SystemRole: constants.SystemRoleSupport}
}

func adminActor() Actor {
	return Actor{UserID: 8, SystemRole: constants.SystemRoleAdmin}
}

func customerActor(userID uint) Actor {
	return Actor{UserID: userID, SystemRole: constants.SystemRoleUser}
}

// storedTicket builds a persisted-looking ticket: id 10, reference set,
// organization 42, reporter 3.
func storedTicket(t *testing.T, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()

	orgID := uint(42)
	var resolvedAt *time.Time
	if status == vo.StatusResolved {
		at := time.Now().UTC().Add(-time.Hour)
		resolvedAt = &at
	}
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		10, "CD-20250101-ABCDEF", "Cannot log in", "Login fails with a 500.",
		status, vo.PriorityMedium, vo.CategoryTechnical,
		&orgID, 3, nil, resolvedAt, 1, now.Add(-24*time.Hour), now,
	)
	require.NoError(t, err)
	return tk
}

func assignedTicket(t *testing.T, status vo.TicketStatus, assigneeID uint) *ticket.Ticket {
	t.Helper()

	tk := storedTicket(t, status)
	orgID := tk.OrganizationID()
	now := time.Now().UTC()
	tk2, err := ticket.ReconstructTicket(
		tk.ID(), tk.Reference(), tk.Subject(), tk.Message(),
		status, tk.Priority(), tk.Category(),
		orgID, tk.ReporterID(), &assigneeID, tk.ResolvedAt(), tk.Version(),
		now.Add(-24*time.Hour), now,
	)
	require.NoError(t, err)
	return tk2
}

func storedComment(t *testing.T, commentID, ticketID, authorID uint, internal bool) *ticket.Comment {
	t.Helper()

	now := time.Now().UTC()
	c, err := ticket.ReconstructComment(commentID, ticketID, authorID, "Looking into it.", internal, now, now)
	require.NoError(t, err)
	return c
}

func orgMembership(t *testing.T, userID, organizationID uint, role orgvo.Role) *organization.Membership {
	t.Helper()

	m, err := organization.ReconstructMembership(userID, organizationID, role, time.Now().UTC())
	require.NoError(t, err)
	return m
}
