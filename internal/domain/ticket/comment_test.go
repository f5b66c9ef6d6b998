package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name       string
		ticketID   uint
		userID     uint
		message    string
		isInternal bool
		wantErr    bool
	}{
		{name: "customer visible", ticketID: 1, userID: 2, message: "Any update?"},
		{name: "internal note", ticketID: 1, userID: 2, message: "Escalated to infra", isInternal: true},
		{name: "missing ticket", ticketID: 0, userID: 2, message: "x", wantErr: true},
		{name: "missing user", ticketID: 1, userID: 0, message: "x", wantErr: true},
		{name: "empty message", ticketID: 1, userID: 2, message: "", wantErr: true},
		{name: "message too long", ticketID: 1, userID: 2, message: strings.Repeat("a", 5001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.userID, tt.message, tt.isInternal)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isInternal, c.IsInternal())
			assert.Equal(t, tt.message, c.Message())
		})
	}
}

func TestComment_UpdateMessage(t *testing.T) {
	c, err := NewComment(1, 2, "original", false)
	require.NoError(t, err)

	require.NoError(t, c.UpdateMessage("edited"))
	assert.Equal(t, "edited", c.Message())

	assert.Error(t, c.UpdateMessage(""))
	assert.Error(t, c.UpdateMessage(strings.Repeat("a", 5001)))
}

func TestComment_IsAuthoredBy(t *testing.T) {
	c, err := NewComment(1, 2, "hello", false)
	require.NoError(t, err)
	assert.True(t, c.IsAuthoredBy(2))
	assert.False(t, c.IsAuthoredBy(3))
}

func TestNewAttachment(t *testing.T) {
	commentID := uint(5)
	tests := []struct {
		name      string
		ticketID  uint
		commentID *uint
		fileName  string
		fileSize  int64
		fileURL   string
		wantErr   bool
	}{
		{name: "ticket attachment", ticketID: 1, fileName: "log.txt", fileSize: 128, fileURL: "https://files.example.com/a"},
		{name: "comment attachment", ticketID: 1, commentID: &commentID, fileName: "trace.png", fileSize: 2048, fileURL: "https://files.example.com/b"},
		{name: "missing ticket", ticketID: 0, fileName: "x", fileSize: 1, fileURL: "u", wantErr: true},
		{name: "zero size", ticketID: 1, fileName: "x", fileSize: 0, fileURL: "u", wantErr: true},
		{name: "missing url", ticketID: 1, fileName: "x", fileSize: 1, fileURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAttachment(tt.ticketID, tt.commentID, tt.fileName, tt.fileSize, "text/plain", tt.fileURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.commentID, a.CommentID())
		})
	}
}
