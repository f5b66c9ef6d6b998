package usecases

import (
	"context"

	"crewdesk/internal/application/user/dto"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email string
	Name  string
	Image string
}

// DefaultOrganizationEnqueuer hands the new user off to the background
// bootstrap that creates their first organization.
type DefaultOrganizationEnqueuer interface {
	EnqueueDefaultOrganization(ctx context.Context, userID uint, name string) error
}

// RegisterUserUseCase records a user coming in from the identity provider.
// The default organization is created asynchronously so a queue hiccup can
// never fail the signup itself.
type RegisterUserUseCase struct {
	userRepo user.Repository
	enqueuer DefaultOrganizationEnqueuer
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	enqueuer DefaultOrganizationEnqueuer,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	u, err := user.NewUser(cmd.Email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Image != "" {
		u.UpdateProfile(cmd.Name, cmd.Image)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, u.Email())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.WrapInternal(err, "failed to check existing user")
	}
	if existing != nil {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		return nil, errors.WrapInternal(err, "failed to save user")
	}

	if err := uc.enqueuer.EnqueueDefaultOrganization(ctx, u.ID(), u.Name()); err != nil {
		// Signup already succeeded; the bootstrap can be replayed later.
		uc.logger.Errorw("failed to enqueue default organization bootstrap",
			"user_id", u.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", u.Email())

	return dto.ToUserDTO(u), nil
}
