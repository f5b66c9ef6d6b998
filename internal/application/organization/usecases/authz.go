package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/shared/errors"
)

// requireMembership loads the actor's membership in the organization or fails
// Forbidden. Absence of a row means no access; a missing row is never
// surfaced as NotFound to avoid leaking tenant existence.
func requireMembership(ctx context.Context, repo organization.MembershipRepository, userID, organizationID uint) (*organization.Membership, error) {
	m, err := repo.Get(ctx, userID, organizationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError("you are not a member of this organization")
		}
		return nil, errors.WrapInternal(err, "failed to load membership")
	}
	return m, nil
}

// requireManager loads the actor's membership and fails Forbidden unless the
// role is ADMIN or OWNER.
func requireManager(ctx context.Context, repo organization.MembershipRepository, userID, organizationID uint) (*organization.Membership, error) {
	m, err := requireMembership(ctx, repo, userID, organizationID)
	if err != nil {
		return nil, err
	}
	if !m.Role().CanManageMembers() {
		return nil, errors.NewForbiddenError("admin or owner role required")
	}
	return m, nil
}
