package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/netra/gallery/internal/api"
	"github.com/netra/gallery/internal/config"
	"github.com/netra/gallery/internal/handlers"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
	"github.com/netra/gallery/internal/seed"
	"github.com/netra/gallery/internal/services"
	"github.com/resend/resend-go/v2"
	"github.com/spf13/cobra"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery HTTP server",
		Long: `Start the gallery HTTP server and begin accepting API requests.

The server will:
- Load configuration from config.yaml and environment variables (or --config)
- Open the configured store and load the starter gallery when SEED_ENABLED
- Create the admin account if ADMIN_USERNAME is set
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with default configuration
  server serve

  # Start on another address with debug logging
  server serve --addr :8080 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if addr != "" {
				cfg.ServerAddress = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: :5000)")
	return cmd
}

func newLogger(cfg *config.Config) *observability.Logger {
	level := observability.ParseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "console" {
		return observability.NewConsoleLogger(cfg.ServiceName, level)
	}
	return observability.NewLogger(cfg.ServiceName, level)
}

// newNotifier prefers Resend, then SMTP, then logging only
func newNotifier(cfg *config.Config, logger *observability.Logger) services.Notifier {
	switch {
	case cfg.ResendAPIKey != "":
		return services.NewResendNotifier(resend.NewClient(cfg.ResendAPIKey), cfg.ContactFrom, cfg.ContactRecipients()...)
	case cfg.SMTPHost != "":
		return services.NewSMTPNotifier(services.SMTPConfig{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			Username:   cfg.SMTPUsername,
			Password:   cfg.SMTPPassword,
			From:       cfg.ContactFrom,
			To:         cfg.ContactRecipients(),
			UseTLS:     cfg.SMTPTLS,
			SkipVerify: cfg.SMTPSkipVerify,
		})
	default:
		return services.NewLogNotifier(logger)
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully
func runServer(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg)
	observability.SetDefault(logger)
	logger.WithField("version", Version).Info("Starting NETRA gallery server")

	telemetry, err := observability.Initialize(ctx, observability.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		StoreDriver:    cfg.StoreDriver,
		Enabled:        cfg.OTelEnabled,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Insecure:       cfg.OTLPInsecure,
		SampleRatio:    cfg.OTelSampleRatio,
	})
	if err != nil {
		return fmt.Errorf("initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Telemetry shutdown failed")
		}
	}()

	store, err := repository.Open(cfg.StoreDriver, cfg.StoreDSN, nil)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	logger.WithField("driver", store.Driver).Info("Store opened")

	if cfg.SeedEnabled {
		if _, err := seed.Load(ctx, store, cfg.SeedFakePhotos, cfg.SeedFakeSeed); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}

	users := services.NewUserService(store.Users)
	if _, err := users.BootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.WithError(err).Error("Admin bootstrap failed")
	}

	handlers.Version = Version
	handlers.GitCommit = GitCommit
	handlers.BuildTime = BuildDate
	if cfg.MetricsEnabled {
		metrics.Init(Version, GitCommit, BuildDate, store.Driver)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := services.NewWebSocketHub()
	go hub.Run(hubCtx)

	notifier := newNotifier(cfg, logger)
	logger.WithField("notifier", notifier.Name()).Info("Contact notifier configured")

	router := api.NewRouter(api.Deps{
		Store:          store,
		Gallery:        services.NewGalleryService(store, hub),
		Contact:        services.NewContactService(store.ContactMessages, notifier),
		Hub:            hub,
		Logger:         logger,
		ServiceName:    cfg.ServiceName,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.ServerAddress).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.WithField("websocket_clients", hub.GetClientCount()).Info("Shutting down server...")
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
