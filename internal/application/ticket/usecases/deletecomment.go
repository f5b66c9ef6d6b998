package usecases

import (
	"context"

	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Actor     Actor
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("comment not found")
		}
		return errors.WrapInternal(err, "failed to load comment")
	}

	if !comment.IsAuthoredBy(cmd.Actor.UserID) && !cmd.Actor.isStaff() {
		return errors.NewForbiddenError("you can only delete your own comments")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		return errors.WrapInternal(err, "failed to delete comment")
	}

	uc.logger.Infow("comment deleted",
		"comment_id", cmd.CommentID,
		"actor_id", cmd.Actor.UserID,
	)
	return nil
}
