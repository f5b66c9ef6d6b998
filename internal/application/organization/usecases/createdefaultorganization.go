package usecases

import (
	"context"
	"fmt"

	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type CreateDefaultOrganizationCommand struct {
	UserID uint
	Name   string
}

// CreateDefaultOrganizationUseCase is the async bootstrap step that gives a
// freshly signed-up user their first organization. It runs at-least-once from
// the job queue, so it guards against replays: a user who already has a
// default organization is left alone.
type CreateDefaultOrganizationUseCase struct {
	createOrg CreateOrganizationExecutor
	userRepo  user.Repository
	logger    logger.Interface
}

func NewCreateDefaultOrganizationUseCase(
	createOrg CreateOrganizationExecutor,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateDefaultOrganizationUseCase {
	return &CreateDefaultOrganizationUseCase{
		createOrg: createOrg,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *CreateDefaultOrganizationUseCase) Execute(ctx context.Context, cmd CreateDefaultOrganizationCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user id is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("user not found")
		}
		return errors.WrapInternal(err, "failed to load user")
	}

	if u.HasDefaultOrganization() {
		uc.logger.Infow("default organization already present, skipping bootstrap",
			"user_id", cmd.UserID,
			"organization_id", *u.DefaultOrganizationID(),
		)
		return nil
	}

	name := cmd.Name
	if name == "" {
		name = u.Name()
	}

	result, err := uc.createOrg.Execute(ctx, CreateOrganizationCommand{
		ActorID: cmd.UserID,
		Name:    fmt.Sprintf("%s's Organization", name),
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("default organization bootstrapped",
		"user_id", cmd.UserID,
		"organization_id", result.ID,
		"slug", result.Slug,
	)
	return nil
}
