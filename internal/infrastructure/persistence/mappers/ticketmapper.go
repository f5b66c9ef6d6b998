package mappers

import (
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		ResolvedAt:     timePtrToMillis(t.ResolvedAt()),
		Version:        t.Version(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Reference,
		model.Subject,
		model.Message,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		vo.Category(model.Category),
		model.OrganizationID,
		model.ReporterID,
		model.AssigneeID,
		millisPtrToTime(model.ResolvedAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Message:    c.Message(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Message,
		model.IsInternal,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		CommentID: a.CommentID(),
		FileName:  a.FileName(),
		FileSize:  a.FileSize(),
		FileType:  a.FileType(),
		FileURL:   a.FileURL(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.CommentID,
		model.FileName,
		model.FileSize,
		model.FileType,
		model.FileURL,
		millisToTime(model.CreatedAt),
	)
}
