package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen              TicketStatus = "OPEN"
	StatusInProgress        TicketStatus = "IN_PROGRESS"
	StatusWaitingOnCustomer TicketStatus = "WAITING_ON_CUSTOMER"
	StatusResolved          TicketStatus = "RESOLVED"
	StatusClosed            TicketStatus = "CLOSED"
	StatusDuplicate         TicketStatus = "DUPLICATE"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:              true,
	StatusInProgress:        true,
	StatusWaitingOnCustomer: true,
	StatusResolved:          true,
	StatusClosed:            true,
	StatusDuplicate:         true,
}

// ticketStatusTransitions covers the staff-driven moves. Leaving RESOLVED or
// CLOSED for OPEN is not listed here: that path exists only through
// Ticket.Reopen, triggered by a customer-visible comment.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusDuplicate,
		StatusClosed,
	},
	StatusInProgress: {
		StatusWaitingOnCustomer,
		StatusResolved,
		StatusDuplicate,
		StatusClosed,
	},
	StatusWaitingOnCustomer: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed:    {},
	StatusDuplicate: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsReopenable reports whether a customer-visible comment brings the ticket
// back to OPEN.
func (ts TicketStatus) IsReopenable() bool {
	return ts == StatusResolved || ts == StatusClosed
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingOnCustomer() bool {
	return ts == StatusWaitingOnCustomer
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsDuplicate() bool {
	return ts == StatusDuplicate
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
