// @title Event RSVP API
// @version 1.0
// @description Guest RSVP submission, token-based self-service updates and admin reporting for a single event.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventrsvp/config"
	_ "eventrsvp/docs"
	"eventrsvp/internal/adapters/auth"
	"eventrsvp/internal/adapters/email"
	deliveryhttp "eventrsvp/internal/delivery/http"
	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/repository/memory"
	"eventrsvp/internal/repository/postgres"
	"eventrsvp/internal/services"
)

const (
	shutdownTimeout = 10 * time.Second
	visitorTTL      = 10 * time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	mailer, err := email.NewMailer(cfg.Mailer, logger)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	if cfg.Event.RSVPDeadline.After(cfg.Event.Date) {
		logger.Warn("rsvp deadline is after the event date", "deadline", cfg.Event.RSVPDeadline, "event_date", cfg.Event.Date)
	}
	links := services.UpdateLinks{BaseURL: cfg.PublicBaseURL}
	rsvpService := services.NewRSVPService(
		repo,
		auth.NewUpdateTokenIssuer(),
		services.NewDeadlineGate(cfg.Event),
		emailService,
		links,
		logger,
	)

	router := deliveryhttp.NewRouter(
		controllers.NewRSVPController(logger, rsvpService, links),
		controllers.NewHealthController(logger, repo),
		middleware.NewIPRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, visitorTTL),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "store", cfg.StoreDriver, "event", cfg.Event.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the configured repository and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.RSVPRepository, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("using in-memory store; RSVPs are lost on restart")
		return memory.NewRSVPRepository(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return postgres.NewRSVPRepository(db), closeDB(db, logger), nil
}

func closeDB(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Error("close db", "err", err)
		}
	}
}
