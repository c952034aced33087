package cmd

import (
	"context"
	"fmt"

	"spoolq/core/config"
	"spoolq/core/logger"
	"spoolq/core/storage"
	"spoolq/core/uucp"
	"spoolq/feature/spool"

	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *spool.Service
}

// newApp loads the configuration, builds the logger and opens the sites.
// Site names given on the command line replace the configured ones.
func newApp(ctx context.Context, sites []string) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if len(sites) > 0 {
		cfg.Spool.Sites = sites
	}
	if len(cfg.Spool.Sites) == 0 {
		return nil, fmt.Errorf("no sites given; pass site names or set SPOOL_SITES")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	backend, err := openSpool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := spool.NewService(ctx, cfg.Spool, backend, logg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logg, service: svc}, nil
}

// openSpool returns the spool backend selected by the configuration.
func openSpool(ctx context.Context, cfg *config.Config) (uucp.Spool, error) {
	switch cfg.Spool.Backend {
	case spool.BackendStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}
		return storage.NewSpool(client, cfg.Storage.Bucket, cfg.Storage.Prefix), nil
	default:
		return uucp.DirSpool{}, nil
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}
