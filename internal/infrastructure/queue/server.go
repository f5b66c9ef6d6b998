package queue

import (
	"context"

	"github.com/hibiken/asynq"

	sharedConfig "crewdesk/internal/shared/config"
	"crewdesk/internal/shared/logger"
)

// Server is the worker-side consumer. Handlers are registered before Run.
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger logger.Interface
}

func NewServer(redisCfg *sharedConfig.RedisConfig, queueCfg *sharedConfig.QueueConfig, log logger.Interface) *Server {
	concurrency := queueCfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := &Server{
		mux:    asynq.NewServeMux(),
		logger: log,
	}

	srv.server = asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.GetAddr(),
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				QueueDefault: 3,
				QueueLow:     1,
			},
			Logger:       &asynqLogger{log: log},
			ErrorHandler: asynq.ErrorHandlerFunc(srv.handleError),
		},
	)

	return srv
}

// Handle registers a handler for a task type.
func (s *Server) Handle(taskType string, handler asynq.Handler) {
	s.mux.Handle(taskType, handler)
}

// Run blocks until Shutdown is called or the server receives a signal.
func (s *Server) Run() error {
	return s.server.Run(s.mux)
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}

// handleError runs on every failed attempt. A task that has burned through
// its retries is logged as terminal; the failure stays inside the worker and
// never reaches the request that enqueued it.
func (s *Server) handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	taskID, _ := asynq.GetTaskID(ctx)

	if retried >= maxRetry {
		s.logger.Errorw("task failed permanently, retries exhausted",
			"task_id", taskID,
			"task_type", task.Type(),
			"retried", retried,
			"max_retry", maxRetry,
			"error", err,
		)
		return
	}

	s.logger.Warnw("task failed, will retry",
		"task_id", taskID,
		"task_type", task.Type(),
		"retried", retried,
		"max_retry", maxRetry,
		"error", err,
	)
}
