package worker

import (
	"context"
	"errors"
	"time"

	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	loginLogPurgeInterval = time.Hour
)

// Service runs the asynq server, when the queue is enabled, and the
// periodic maintenance loop.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the worker service
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	s := &Service{
		name:     "worker",
		consumer: consumer,
	}
	if cfg == nil || !cfg.Enabled {
		logger.Infow("worker_queue_disabled", "maintenance_only", true)
		return s, nil
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	s.server = asynq.NewServer(opt, serverCfg)
	s.mux = asynq.NewServeMux()
	consumer.Register(s.mux)
	return s, nil
}

// Name service name
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start blocks until ctx is done or the asynq server exits
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.consumer == nil {
		return errors.New("worker not initialized")
	}
	go s.runLoginLogPurgeLoop(ctx)
	if s.server == nil {
		<-ctx.Done()
		return nil
	}
	return s.server.Run(s.mux)
}

// Stop stops the asynq server
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runLoginLogPurgeLoop(ctx context.Context) {
	if s.loginLogRetention() <= 0 {
		return
	}
	s.purgeLoginLogs()

	ticker := time.NewTicker(loginLogPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeLoginLogs()
		}
	}
}

func (s *Service) loginLogRetention() time.Duration {
	if s == nil || s.consumer == nil || s.consumer.Config == nil || s.consumer.LoginAttemptService == nil {
		return 0
	}
	days := s.consumer.Config.Auth.LoginLogRetentionDays
	if days <= 0 {
		return 0
	}
	return time.Duration(days) * 24 * time.Hour
}

func (s *Service) purgeLoginLogs() {
	retention := s.loginLogRetention()
	if retention <= 0 {
		return
	}
	removed, err := s.consumer.LoginAttemptService.PurgeOlderThan(retention, s.consumer.now())
	if err != nil {
		logger.Warnw("worker_login_log_purge_failed", "error", err)
		return
	}
	if removed > 0 {
		logger.Infow("worker_login_log_purged", "removed", removed)
	}
}
