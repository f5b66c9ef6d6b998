package usecases

import (
	"context"

	"crewdesk/internal/application/user/dto"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.WrapInternal(err, "failed to load user")
	}

	return dto.ToUserDTO(u), nil
}
