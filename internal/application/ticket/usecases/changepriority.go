package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type ChangePriorityCommand struct {
	Actor    Actor
	TicketID uint
	Priority string
}

type ChangePriorityUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangePriorityUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.TicketDTO, error) {
	if !cmd.Actor.isStaff() {
		return nil, errors.NewForbiddenError("only support staff can change ticket priority")
	}

	priority, err := vo.NewPriority(cmd.Priority)
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

	if err := t.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, errors.WrapInternal(err, "failed to update ticket")
	}

	uc.logger.Infow("ticket priority changed",
		"ticket_id", cmd.TicketID,
		"priority", priority.String(),
		"actor_id", cmd.Actor.UserID,
	)
	return dto.ToTicketDTO(t), nil
}
