package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor       Actor
	TicketID    uint
	Message     string
	IsInternal  bool
	Attachments []AttachmentInput
}

type AddCommentUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	access         *ticketAccess
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	membershipRepo organization.MembershipRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		access:         newTicketAccess(membershipRepo),
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.WrapInternal(err, "failed to load ticket")
	}

	if err := uc.access.requireView(ctx, cmd.Actor, t); err != nil {
		return nil, err
	}
	if cmd.IsInternal && !canViewInternal(cmd.Actor, t) {
		return nil, errors.NewForbiddenError("only support staff can post internal comments")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.UserID, cmd.Message, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// A customer replying on a resolved or closed ticket reopens it.
	reopened := false
	if t.Status().IsReopenable() && !cmd.Actor.isStaff() && !cmd.IsInternal {
		if err := t.Reopen(); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		reopened = true
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return errors.WrapInternal(err, "failed to save comment")
		}

		if reopened {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return errors.WrapInternal(err, "failed to reopen ticket")
			}
		}

		commentID := comment.ID()
		for _, in := range cmd.Attachments {
			attachment, err := ticket.NewAttachment(t.ID(), &commentID, in.FileName, in.FileSize, in.FileType, in.FileURL)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.attachmentRepo.Save(txCtx, attachment); err != nil {
				return errors.WrapInternal(err, "failed to save attachment")
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if reopened {
		uc.logger.Infow("ticket reopened by comment",
			"ticket_id", cmd.TicketID,
			"user_id", cmd.Actor.UserID,
		)
	}
	out := dto.ToCommentDTO(comment)
	return &out, nil
}
