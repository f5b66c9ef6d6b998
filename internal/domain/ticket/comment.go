package ticket

import (
	"fmt"
	"time"
)

// Comment is a message on a ticket. Internal comments are a staff-only side
// channel: they are filtered out of every read path unless the reader is
// platform staff or the ticket's assignee.
type Comment struct {
	id         uint
	ticketID   uint
	userID     uint
	message    string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComment(
	ticketID uint,
	userID uint,
	message string,
	isInternal bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	now := time.Now().UTC()
	return &Comment{
		ticketID:   ticketID,
		userID:     userID,
		message:    message,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	message string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		userID:     userID,
		message:    message,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsAuthoredBy reports whether the given user wrote this comment.
func (c *Comment) IsAuthoredBy(userID uint) bool {
	return c.userID == userID
}

func (c *Comment) UpdateMessage(message string) error {
	if len(message) == 0 {
		return fmt.Errorf("message cannot be empty")
	}
	if len(message) > 5000 {
		return fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	c.message = message
	c.updatedAt = time.Now().UTC()
	return nil
}
