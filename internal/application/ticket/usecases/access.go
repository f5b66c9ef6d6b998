package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/auth"
	"crewdesk/internal/shared/errors"
)

// Actor identifies the requesting user to the ticket use cases.
type Actor struct {
	UserID     uint
	SystemRole string
}

func (a Actor) isStaff() bool {
	return auth.IsSystemStaff(a.SystemRole)
}

// ticketAccess evaluates who may read or write a ticket: platform staff, the
// reporter, the assignee, or an ADMIN/OWNER member of the ticket's
// organization.
type ticketAccess struct {
	membershipRepo organization.MembershipRepository
}

func newTicketAccess(membershipRepo organization.MembershipRepository) *ticketAccess {
	return &ticketAccess{membershipRepo: membershipRepo}
}

func (ta *ticketAccess) canView(ctx context.Context, actor Actor, t *ticket.Ticket) (bool, error) {
	if actor.isStaff() || t.IsReportedBy(actor.UserID) || t.IsAssignedTo(actor.UserID) {
		return true, nil
	}

	orgID := t.OrganizationID()
	if orgID == nil {
		return false, nil
	}

	m, err := ta.membershipRepo.Get(ctx, actor.UserID, *orgID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, errors.WrapInternal(err, "failed to load membership")
	}
	return m.Role().CanManageMembers(), nil
}

// requireView fails NotFound rather than Forbidden so a caller probing ticket
// ids cannot distinguish hidden tickets from absent ones.
func (ta *ticketAccess) requireView(ctx context.Context, actor Actor, t *ticket.Ticket) error {
	ok, err := ta.canView(ctx, actor, t)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

// canViewInternal is deliberately narrower than canView: tenant admins read
// the ticket but never its internal comments.
func canViewInternal(actor Actor, t *ticket.Ticket) bool {
	return actor.isStaff() || t.IsAssignedTo(actor.UserID)
}
