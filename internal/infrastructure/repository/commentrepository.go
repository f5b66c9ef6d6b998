package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/infrastructure/persistence/mappers"
	"crewdesk/internal/infrastructure/persistence/models"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"message":    model.Message,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("comment_id = ?", commentID).Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comment attachments: %w", err)
	}

	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var commentModels []models.CommentModel
	if err := query.Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
