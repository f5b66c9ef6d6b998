package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type AttachmentInput struct {
	FileName string
	FileSize int64
	FileType string
	FileURL  string
}

type CreateTicketCommand struct {
	Actor          Actor
	Subject        string
	Message        string
	Category       string
	Priority       string
	OrganizationID *uint
	Attachments    []AttachmentInput
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	membershipRepo organization.MembershipRepository
	refGen         ticket.ReferenceGenerator
	txMgr          db.TxManager
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	membershipRepo organization.MembershipRepository,
	refGen ticket.ReferenceGenerator,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		membershipRepo: membershipRepo,
		refGen:         refGen,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.OrganizationID != nil {
		if _, err := uc.membershipRepo.Get(ctx, cmd.Actor.UserID, *cmd.OrganizationID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewForbiddenError("you are not a member of this organization")
			}
			return nil, errors.WrapInternal(err, "failed to check membership")
		}
	}

	t, err := ticket.NewTicket(cmd.Subject, cmd.Message, category, priority, cmd.Actor.UserID, cmd.OrganizationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	reference, err := uc.refGen.Generate(ctx)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to generate ticket reference")
	}
	if err := t.SetReference(reference); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return errors.WrapInternal(err, "failed to save ticket")
		}

		for _, in := range cmd.Attachments {
			attachment, err := ticket.NewAttachment(t.ID(), nil, in.FileName, in.FileSize, in.FileType, in.FileURL)
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

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"reference", t.Reference(),
		"reporter_id", cmd.Actor.UserID,
		"priority", priority.String(),
	)
	return dto.ToTicketDTO(t), nil
}
