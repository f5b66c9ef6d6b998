package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type EditCommentCommand struct {
	Actor     Actor
	CommentID uint
	Message   string
}

type EditCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewEditCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *EditCommentUseCase {
	return &EditCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (*dto.CommentDTO, error) {
	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, errors.WrapInternal(err, "failed to load comment")
	}

	if !comment.IsAuthoredBy(cmd.Actor.UserID) && !cmd.Actor.isStaff() {
		return nil, errors.NewForbiddenError("you can only edit your own comments")
	}

	if err := comment.UpdateMessage(cmd.Message); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.WrapInternal(err, "failed to update comment")
	}

	out := dto.ToCommentDTO(comment)
	return &out, nil
}
