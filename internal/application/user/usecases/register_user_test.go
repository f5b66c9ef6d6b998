package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/user"
	uservo "crewdesk/internal/domain/user/valueobjects"
	"crewdesk/internal/shared/errors"
)

func existingUser(t *testing.T, id uint, email string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, email, "Existing User", "", uservo.SystemRoleUser, nil, now, now)
	require.NoError(t, err)
	return u
}

func TestRegisterUser_CreatesUserAndEnqueuesBootstrap(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(7)
		},
	}
	enqueuer := &mockEnqueuer{}

	uc := NewRegisterUserUseCase(userRepo, enqueuer, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "Ada@Example.com",
		Name:  "Ada Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "ada@example.com", result.Email, "email should be normalized")
	assert.Equal(t, "USER", result.SystemRole)

	require.Len(t, enqueuer.calls, 1)
	assert.Equal(t, uint(7), enqueuer.calls[0])
}

func TestRegisterUser_ExistingEmailConflicts(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(t, 3, email), nil
		},
	}
	enqueuer := &mockEnqueuer{}

	uc := NewRegisterUserUseCase(userRepo, enqueuer, &mockLogger{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	assert.Empty(t, enqueuer.calls)
}

func TestRegisterUser_DuplicateKeyOnSaveConflicts(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return fmt.Errorf("failed to create user: Duplicate entry 'ada@example.com' for key 'users.idx_users_email'")
		},
	}

	uc := NewRegisterUserUseCase(userRepo, &mockEnqueuer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterUser_EnqueueFailureDoesNotFailSignup(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(9)
		},
	}
	enqueuer := &mockEnqueuer{
		EnqueueFunc: func(ctx context.Context, userID uint, name string) error {
			return fmt.Errorf("redis connection refused")
		},
	}

	uc := NewRegisterUserUseCase(userRepo, enqueuer, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.ID)
}

func TestRegisterUser_InvalidInputRejected(t *testing.T) {
	tests := []struct {
		name  string
		email string
		user  string
	}{
		{name: "missing email", email: "", user: "Ada"},
		{name: "missing name", email: "ada@example.com", user: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockEnqueuer{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), RegisterUserCommand{
				Email: tt.email,
				Name:  tt.user,
			})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		})
	}
}
