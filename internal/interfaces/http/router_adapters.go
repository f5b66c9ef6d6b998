package http

import (
	"context"

	"crewdesk/internal/infrastructure/queue"
)

// defaultOrganizationEnqueuer bridges the user registration use case onto the
// task queue without the application layer importing the queue package.
type defaultOrganizationEnqueuer struct {
	client *queue.Client
}

func (a *defaultOrganizationEnqueuer) EnqueueDefaultOrganization(ctx context.Context, userID uint, name string) error {
	return a.client.EnqueueOrgBootstrap(ctx, queue.OrgBootstrapPayload{
		UserID: userID,
		Name:   name,
	})
}
