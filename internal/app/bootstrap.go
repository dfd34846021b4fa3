package app

import (
	"errors"
	"fmt"

	"github.com/rpg-companion/api/internal/cache"
	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/provider"
	"github.com/rpg-companion/api/internal/router"
	"github.com/rpg-companion/api/internal/worker"
)

// BuildRunner assembles the services selected by mode
func BuildRunner(cfg *config.Config, mode string) (*Runner, *provider.Container, error) {
	if cfg == nil {
		return nil, nil, errors.New("config is nil")
	}
	if !IsValidMode(mode) {
		return nil, nil, fmt.Errorf("unknown mode %q", mode)
	}

	container := provider.NewContainer(cfg)
	if err := container.CheckSessionKey(); err != nil {
		return nil, nil, err
	}

	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, nil, err
		}
		services = append(services, workerService)
	}

	return NewRunner(services...), container, nil
}

// Run application entry point
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, container, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}
	defer closeContainer(container, opts)

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

func closeContainer(c *provider.Container, opts Options) {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			opts.Logger.Warnw("queue_client_close_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		opts.Logger.Warnw("redis_close_failed", "error", err)
	}
}
