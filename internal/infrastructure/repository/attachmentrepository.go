package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/infrastructure/persistence/mappers"
	"crewdesk/internal/infrastructure/persistence/models"
	"crewdesk/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment.SetID(model.ID)
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return r.toDomainList(attachmentModels)
}

func (r *AttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return r.toDomainList(attachmentModels)
}

func (r *AttachmentRepository) toDomainList(attachmentModels []models.AttachmentModel) ([]*ticket.Attachment, error) {
	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}
