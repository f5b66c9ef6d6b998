package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/errors"
)

func TestChangePriority_StaffEscalates(t *testing.T) {
	tk := storedTicket(t, vo.StatusOpen)

	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}

	uc := NewChangePriorityUseCase(ticketRepo, &mockLogger{})
	out, err := uc.Execute(context.Background(), ChangePriorityCommand{
		Actor:    staffActor(),
		TicketID: 10,
		Priority: "CRITICAL",
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "CRITICAL", out.Priority)
}

func TestChangePriority_NonStaffForbidden(t *testing.T) {
	uc := NewChangePriorityUseCase(&mockTicketRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ChangePriorityCommand{
		Actor:    customerActor(3),
		TicketID: 10,
		Priority: "HIGH",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestChangePriority_UnknownPriorityRejected(t *testing.T) {
	uc := NewChangePriorityUseCase(&mockTicketRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ChangePriorityCommand{
		Actor:    staffActor(),
		TicketID: 10,
		Priority: "URGENT",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
