package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/shared/errors"
)

func TestEditComment_AuthorUpdatesMessage(t *testing.T) {
	c := storedComment(t, 100, 10, 3, false)

	updated := false
	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *ticket.Comment) error {
			updated = true
			return nil
		},
	}

	uc := NewEditCommentUseCase(commentRepo, &mockLogger{})
	out, err := uc.Execute(context.Background(), EditCommentCommand{
		Actor:     customerActor(3),
		CommentID: 100,
		Message:   "Corrected: it fails on Safari only.",
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Corrected: it fails on Safari only.", out.Message)
}

func TestEditComment_StaffEditsOthersComment(t *testing.T) {
	c := storedComment(t, 100, 10, 3, false)

	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return c, nil
		},
	}

	uc := NewEditCommentUseCase(commentRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), EditCommentCommand{
		Actor:     staffActor(),
		CommentID: 100,
		Message:   "Redacted account details.",
	})

	require.NoError(t, err)
}

func TestEditComment_StrangerForbidden(t *testing.T) {
	c := storedComment(t, 100, 10, 3, false)

	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return c, nil
		},
	}

	uc := NewEditCommentUseCase(commentRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), EditCommentCommand{
		Actor:     customerActor(77),
		CommentID: 100,
		Message:   "hijack",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestEditComment_MissingCommentNotFound(t *testing.T) {
	commentRepo := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return nil, errors.NewNotFoundError("comment not found")
		},
	}

	uc := NewEditCommentUseCase(commentRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), EditCommentCommand{
		Actor:     customerActor(3),
		CommentID: 999,
		Message:   "hello",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
