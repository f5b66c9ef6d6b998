package usecases

import (
	"context"
	"fmt"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	Actor    Actor
	TicketID uint
	Status   string
}

type UpdateStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       db.TxManager
	logger      logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error) {
	if !cmd.Actor.isStaff() {
		return nil, errors.NewForbiddenError("only support staff can change ticket status")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.WrapInternal(err, "failed to load ticket")
	}

	previous := t.Status()
	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return errors.WrapInternal(err, "failed to update ticket")
		}

		// The transition leaves an internal audit trail on the ticket itself.
		audit, err := ticket.NewComment(t.ID(), cmd.Actor.UserID,
			fmt.Sprintf("Status changed from %s to %s", previous, status), true)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.commentRepo.Save(txCtx, audit); err != nil {
			return errors.WrapInternal(err, "failed to save audit comment")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket status updated",
		"ticket_id", cmd.TicketID,
		"from", previous.String(),
		"to", status.String(),
		"actor_id", cmd.Actor.UserID,
	)
	return dto.ToTicketDTO(t), nil
}
