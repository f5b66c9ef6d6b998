package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/organization"
	orgvo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/errors"
)

func newGetTicketUseCase(
	ticketRepo *mockTicketRepository,
	commentRepo *mockCommentRepository,
	attachmentRepo *mockAttachmentRepository,
	membershipRepo *mockMembershipRepository,
) *GetTicketUseCase {
	return NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, membershipRepo, &mockMarkdownService{}, &mockLogger{})
}

func TestGetTicket_ReporterSeesPublicCommentsOnly(t *testing.T) {
	tk := storedTicket(t, vo.StatusOpen)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			assert.False(t, includeInternal)
			return []*ticket.Comment{storedComment(t, 100, ticketID, 9, false)}, nil
		},
	}

	uc := newGetTicketUseCase(ticketRepo, commentRepo, &mockAttachmentRepository{}, &mockMembershipRepository{})
	out, err := uc.Execute(context.Background(), GetTicketQuery{Actor: customerActor(3), TicketID: 10})

	require.NoError(t, err)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "<p>Looking into it.</p>", out.Comments[0].MessageHTML)
}

func TestGetTicket_AssigneeSeesInternalComments(t *testing.T) {
	tk := assignedTicket(t, vo.StatusInProgress, 9)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			assert.True(t, includeInternal)
			return nil, nil
		},
	}

	uc := newGetTicketUseCase(ticketRepo, commentRepo, &mockAttachmentRepository{}, &mockMembershipRepository{})
	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: staffActor(), TicketID: 10})

	require.NoError(t, err)
}

func TestGetTicket_TenantAdminExcludedFromInternal(t *testing.T) {
	tk := storedTicket(t, vo.StatusOpen)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			assert.False(t, includeInternal)
			return nil, nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			return orgMembership(t, userID, organizationID, orgvo.RoleOwner), nil
		},
	}

	uc := newGetTicketUseCase(ticketRepo, commentRepo, &mockAttachmentRepository{}, membershipRepo)
	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: customerActor(5), TicketID: 10})

	require.NoError(t, err)
}

func TestGetTicket_OutsiderGetsNotFound(t *testing.T) {
	tk := storedTicket(t, vo.StatusOpen)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		GetFunc: func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
			return nil, errors.NewNotFoundError("membership not found")
		},
	}

	uc := newGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, membershipRepo)
	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: customerActor(77), TicketID: 10})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestGetTicket_AttachmentsGroupedByComment(t *testing.T) {
	tk := storedTicket(t, vo.StatusOpen)

	commentID := uint(100)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			return []*ticket.Comment{storedComment(t, commentID, ticketID, 3, false)}, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			ticketLevel, err := ticket.NewAttachment(ticketID, nil, "trace.txt", 2048, "text/plain", "https://files.example.com/trace.txt")
			require.NoError(t, err)
			commentLevel, err := ticket.NewAttachment(ticketID, &commentID, "shot.png", 1024, "image/png", "https://files.example.com/shot.png")
			require.NoError(t, err)
			return []*ticket.Attachment{ticketLevel, commentLevel}, nil
		},
	}

	uc := newGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, &mockMembershipRepository{})
	out, err := uc.Execute(context.Background(), GetTicketQuery{Actor: customerActor(3), TicketID: 10})

	require.NoError(t, err)
	require.Len(t, out.Attachments, 1)
	assert.Equal(t, "trace.txt", out.Attachments[0].FileName)
	require.Len(t, out.Comments, 1)
	require.Len(t, out.Comments[0].Attachments, 1)
	assert.Equal(t, "shot.png", out.Comments[0].Attachments[0].FileName)
}
