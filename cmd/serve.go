package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spoolq/core/loader"
	"spoolq/core/logger"
	"spoolq/core/middleware/auth"
	"spoolq/core/middleware/rayid"
	"spoolq/feature/spool"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "spoolq/docs/swagger"
)

// @title Spool Queue API
// @version 1.0
// @description Reconciled UUCP spool queues per site.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [site...]",
	Short: "Serve site queues over HTTP",
	Long:  `Scans every site, keeps their queues up to date with periodic incremental rescans and exposes them over an HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, args)
		if err != nil {
			return err
		}
		defer a.close()
		zap.ReplaceGlobals(a.logger)

		if !a.cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port %q", a.cfg.Server.Port)
		}

		if _, err := a.service.ScanAll(ctx); err != nil {
			a.logger.Warn("Initial scan incomplete", zap.Error(err))
		}

		app := newServer(a)

		interval := time.Duration(a.cfg.Server.ScanIntervalSeconds) * time.Second
		if interval > 0 {
			go rescanLoop(ctx, a.service, a.logger, interval)
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(":" + a.cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		a.logger.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the fiber app with middleware and every enabled feature.
func newServer(a *app) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line carries it
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// API docs stay public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(spool.NewFeature(a.service))
	if err := mgr.LoadAll(app); err != nil {
		a.logger.Error("Failed to load features", zap.Error(err))
	}
	return app
}

// rescanLoop refreshes every site on each tick until ctx is done.
func rescanLoop(ctx context.Context, svc *spool.Service, l *zap.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.ScanAll(ctx); err != nil {
				l.Warn("Periodic scan incomplete", zap.Error(err))
			}
		}
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
