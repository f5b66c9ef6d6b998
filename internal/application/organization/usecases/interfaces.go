package usecases

import (
	"context"

	"crewdesk/internal/application/organization/dto"
)

type CreateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type UpdateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type DeleteOrganizationExecutor interface {
	Execute(ctx context.Context, cmd DeleteOrganizationCommand) error
}

type GetOrganizationExecutor interface {
	Execute(ctx context.Context, query GetOrganizationQuery) (*dto.OrganizationDTO, error)
}

type ListOrganizationsExecutor interface {
	Execute(ctx context.Context, query ListOrganizationsQuery) ([]*dto.OrganizationDTO, error)
}

type InviteMemberExecutor interface {
	Execute(ctx context.Context, cmd InviteMemberCommand) (*dto.InvitationDTO, error)
}

type AcceptInvitationExecutor interface {
	Execute(ctx context.Context, cmd AcceptInvitationCommand) (*AcceptInvitationResult, error)
}

type RevokeInvitationExecutor interface {
	Execute(ctx context.Context, cmd RevokeInvitationCommand) error
}

type GetInvitationByTokenExecutor interface {
	Execute(ctx context.Context, query GetInvitationByTokenQuery) (*dto.PublicInvitationDTO, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) ([]dto.MemberDTO, error)
}

type ListPendingInvitationsExecutor interface {
	Execute(ctx context.Context, query ListPendingInvitationsQuery) ([]*dto.InvitationDTO, error)
}

type RemoveUserExecutor interface {
	Execute(ctx context.Context, cmd RemoveUserCommand) error
}

type UpdateUserRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserRoleCommand) error
}

type CreateDefaultOrganizationExecutor interface {
	Execute(ctx context.Context, cmd CreateDefaultOrganizationCommand) error
}
