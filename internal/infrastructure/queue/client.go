package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	sharedConfig "crewdesk/internal/shared/config"
	"crewdesk/internal/shared/logger"
)

// Client enqueues background tasks. It lives in the API process; the worker
// process consumes them through Server.
type Client struct {
	client   *asynq.Client
	maxRetry int
	logger   logger.Interface
}

func NewClient(redisCfg *sharedConfig.RedisConfig, queueCfg *sharedConfig.QueueConfig, log logger.Interface) *Client {
	maxRetry := queueCfg.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 3
	}

	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisCfg.GetAddr(),
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		}),
		maxRetry: maxRetry,
		logger:   log,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueOrgBootstrap schedules default-organization creation for a new user.
func (c *Client) EnqueueOrgBootstrap(ctx context.Context, payload OrgBootstrapPayload) error {
	return c.enqueue(ctx, TypeOrgBootstrap, payload, QueueDefault)
}

// EnqueueInvitationEmail schedules delivery of an invitation email.
func (c *Client) EnqueueInvitationEmail(ctx context.Context, payload InvitationEmailPayload) error {
	return c.enqueue(ctx, TypeInvitationEmail, payload, QueueLow)
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload any, queueName string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(queueName),
		asynq.MaxRetry(c.maxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	c.logger.Infow("task enqueued",
		"task_id", info.ID,
		"task_type", taskType,
		"queue", queueName,
	)
	return nil
}
