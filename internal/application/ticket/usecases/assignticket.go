package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor      Actor
	TicketID   uint
	AssigneeID *uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	if !cmd.Actor.isStaff() {
		return nil, errors.NewForbiddenError("only support staff can assign tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.WrapInternal(err, "failed to load ticket")
	}

	if cmd.AssigneeID == nil {
		t.Unassign()
	} else {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewNotFoundError("assignee not found")
			}
			return nil, errors.WrapInternal(err, "failed to load assignee")
		}
		if !assignee.SystemRole().IsStaff() {
			return nil, errors.NewValidationError("tickets can only be assigned to support staff")
		}
		if err := t.AssignTo(assignee.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, errors.WrapInternal(err, "failed to update ticket")
	}

	uc.logger.Infow("ticket assignment changed",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.UserID,
	)
	return dto.ToTicketDTO(t), nil
}
