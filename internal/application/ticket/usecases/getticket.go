package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/markdown"
)

type GetTicketQuery struct {
	Actor    Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	access         *ticketAccess
	markdown       markdown.Service
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	membershipRepo organization.MembershipRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		access:         newTicketAccess(membershipRepo),
		markdown:       markdownSvc,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.WrapInternal(err, "failed to load ticket")
	}

	if err := uc.access.requireView(ctx, query.Actor, t); err != nil {
		return nil, err
	}

	includeInternal := canViewInternal(query.Actor, t)
	comments, err := uc.commentRepo.ListByTicket(ctx, query.TicketID, includeInternal)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load comments")
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load attachments")
	}

	result := dto.ToTicketDTO(t)

	commentAttachments := make(map[uint][]dto.AttachmentDTO)
	for _, a := range attachments {
		if a.CommentID() != nil {
			commentAttachments[*a.CommentID()] = append(commentAttachments[*a.CommentID()], dto.ToAttachmentDTO(a))
			continue
		}
		result.Attachments = append(result.Attachments, dto.ToAttachmentDTO(a))
	}

	result.Comments = make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		cd := dto.ToCommentDTO(c)
		if html, err := uc.markdown.ToHTMLSanitized(c.Message()); err == nil {
			cd.MessageHTML = html
		} else {
			uc.logger.Warnw("failed to render comment markdown", "comment_id", c.ID(), "error", err)
		}
		cd.Attachments = commentAttachments[c.ID()]
		result.Comments = append(result.Comments, cd)
	}

	return result, nil
}
