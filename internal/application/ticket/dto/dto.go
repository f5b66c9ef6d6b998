package dto

import (
	"time"

	"crewdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID             uint            `json:"id"`
	Reference      string          `json:"reference"`
	Subject        string          `json:"subject"`
	Message        string          `json:"message"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	Category       string          `json:"category"`
	OrganizationID *uint           `json:"organization_id,omitempty"`
	ReporterID     uint            `json:"reporter_id"`
	AssigneeID     *uint           `json:"assignee_id,omitempty"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Comments       []CommentDTO    `json:"comments,omitempty"`
	Attachments    []AttachmentDTO `json:"attachments,omitempty"`
}

type CommentDTO struct {
	ID          uint            `json:"id"`
	TicketID    uint            `json:"ticket_id"`
	UserID      uint            `json:"user_id"`
	Message     string          `json:"message"`
	MessageHTML string          `json:"message_html,omitempty"`
	IsInternal  bool            `json:"is_internal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
}

type AttachmentDTO struct {
	ID       uint   `json:"id"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
	FileURL  string `json:"file_url"`
}

type TicketListItemDTO struct {
	ID             uint       `json:"id"`
	Reference      string     `json:"reference"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Category       string     `json:"category"`
	OrganizationID *uint      `json:"organization_id,omitempty"`
	ReporterID     uint       `json:"reporter_id"`
	AssigneeID     *uint      `json:"assignee_id,omitempty"`
	CommentCount   int64      `json:"comment_count"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:             t.ID(),
		Reference:      t.Reference(),
		Subject:        t.Subject(),
		Message:        t.Message(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		Category:       t.Category().String(),
		OrganizationID: t.OrganizationID(),
		ReporterID:     t.ReporterID(),
		AssigneeID:     t.AssigneeID(),
		ResolvedAt:     t.ResolvedAt(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Message:    c.Message(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:       a.ID(),
		FileName: a.FileName(),
		FileSize: a.FileSize(),
		FileType: a.FileType(),
		FileURL:  a.FileURL(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, commentCount int64) TicketListItemDTO {
	return TicketListItemDTO{
		ID:             t.ID(),
		Reference:      t.Reference(),
		Subject:        t.Subject(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		Category:       t.Category().String(),
		OrganizationID: t.OrganizationID(),
		ReporterID:     t.ReporterID(),
		AssigneeID:     t.AssigneeID(),
		CommentCount:   commentCount,
		ResolvedAt:     t.ResolvedAt(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
