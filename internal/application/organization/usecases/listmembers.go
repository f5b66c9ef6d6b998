package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type ListMembersQuery struct {
	ActorID        uint
	OrganizationID uint
}

type ListMembersUseCase struct {
	membershipRepo organization.MembershipRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListMembersUseCase(
	membershipRepo organization.MembershipRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) ([]dto.MemberDTO, error) {
	if _, err := requireMembership(ctx, uc.membershipRepo, query.ActorID, query.OrganizationID); err != nil {
		return nil, err
	}

	memberships, err := uc.membershipRepo.ListByOrganization(ctx, query.OrganizationID)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to list memberships")
	}

	userIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		userIDs = append(userIDs, m.UserID())
	}
	users, err := uc.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to load member profiles")
	}
	usersByID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		usersByID[u.ID()] = u
	}

	members := make([]dto.MemberDTO, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, dto.ToMemberDTO(m, usersByID[m.UserID()]))
	}
	return members, nil
}
