package usecases

import (
	"context"

	"crewdesk/internal/application/user/dto"
)

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error)
}
