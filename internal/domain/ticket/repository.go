package ticket

import (
	"context"

	vo "crewdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByReference(ctx context.Context, reference string) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	// CountComments returns comment counts per ticket ID. Internal comments
	// are excluded unless includeInternal is set.
	CountComments(ctx context.Context, ticketIDs []uint, includeInternal bool) (map[uint]int64, error)
}

// TicketFilter scopes a ticket listing. A nil OrganizationID paired with
// CrossTenant=true yields results across all tenants (staff only).
type TicketFilter struct {
	OrganizationID *uint
	ReporterID     *uint
	AssigneeID     *uint
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	Category       *vo.Category
	Search         string
	CrossTenant    bool
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicket returns the ticket's comments in chronological order,
	// excluding internal ones unless includeInternal is set.
	ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
	ListByComment(ctx context.Context, commentID uint) ([]*Attachment, error)
}
