package ticket

import (
	"fmt"
	"time"

	vo "crewdesk/internal/domain/ticket/valueobjects"
)

// Ticket is a support request raised by a tenant member. organizationID is
// nullable: a ticket raised outside any tenant context is personal to its
// reporter. resolvedAt moves in lockstep with the RESOLVED status.
type Ticket struct {
	id             uint
	reference      string
	subject        string
	message        string
	status         vo.TicketStatus
	priority       vo.Priority
	category       vo.Category
	organizationID *uint
	reporterID     uint
	assigneeID     *uint
	resolvedAt     *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	subject string,
	message string,
	category vo.Category,
	priority vo.Priority,
	reporterID uint,
	organizationID *uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if organizationID != nil && *organizationID == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}

	now := time.Now().UTC()
	return &Ticket{
		subject:        subject,
		message:        message,
		status:         vo.StatusOpen,
		priority:       priority,
		category:       category,
		organizationID: organizationID,
		reporterID:     reporterID,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	reference string,
	subject string,
	message string,
	status vo.TicketStatus,
	priority vo.Priority,
	category vo.Category,
	organizationID *uint,
	reporterID uint,
	assigneeID *uint,
	resolvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("ticket reference is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &Ticket{
		id:             id,
		reference:      reference,
		subject:        subject,
		message:        message,
		status:         status,
		priority:       priority,
		category:       category,
		organizationID: organizationID,
		reporterID:     reporterID,
		assigneeID:     assigneeID,
		resolvedAt:     resolvedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Reference() string {
	return t.reference
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) OrganizationID() *uint {
	return t.organizationID
}

func (t *Ticket) ReporterID() uint {
	return t.reporterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetReference(reference string) error {
	if len(t.reference) > 0 {
		return fmt.Errorf("ticket reference is already set")
	}
	if len(reference) == 0 {
		return fmt.Errorf("ticket reference cannot be empty")
	}
	t.reference = reference
	return nil
}

// IsReportedBy reports whether the given user raised this ticket.
func (t *Ticket) IsReportedBy(userID uint) bool {
	return t.reporterID == userID
}

// IsAssignedTo reports whether the given user is the current assignee.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// ChangeStatus applies a staff-driven status transition. RESOLVED stamps
// resolvedAt; leaving RESOLVED clears it.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	wasResolved := t.status.IsResolved()
	t.status = newStatus
	t.updatedAt = time.Now().UTC()
	t.version++

	if newStatus.IsResolved() {
		now := time.Now().UTC()
		t.resolvedAt = &now
	} else if wasResolved {
		t.resolvedAt = nil
	}

	return nil
}

// Reopen brings a RESOLVED or CLOSED ticket back to OPEN. Triggered by a
// customer-visible comment from a non-staff actor, never directly by staff.
func (t *Ticket) Reopen() error {
	if !t.status.IsReopenable() {
		return fmt.Errorf("only resolved or closed tickets can be reopened, ticket is %s", t.status)
	}

	t.status = vo.StatusOpen
	t.resolvedAt = nil
	t.updatedAt = time.Now().UTC()
	t.version++
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now().UTC()
	t.version++

	if t.status.IsOpen() {
		t.status = vo.StatusInProgress
	}

	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now().UTC()
	t.version++
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()
	t.version++
	return nil
}
