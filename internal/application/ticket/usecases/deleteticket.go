package usecases

import (
	"context"

	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/auth"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !auth.IsSystemAdmin(cmd.Actor.SystemRole) {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("ticket not found")
		}
		return errors.WrapInternal(err, "failed to load ticket")
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		return errors.WrapInternal(err, "failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted",
		"ticket_id", cmd.TicketID,
		"reference", t.Reference(),
		"actor_id", cmd.Actor.UserID,
	)
	return nil
}
