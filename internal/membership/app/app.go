package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/circle/internal/membership/http"
	"github.com/aussiebroadwan/circle/internal/membership/service"
	"github.com/aussiebroadwan/circle/internal/membership/store"
	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/postgres"
	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/circle/internal/membership/web"
	"github.com/aussiebroadwan/circle/pkg/cryptox"
	"github.com/aussiebroadwan/circle/pkg/httpx"
	"github.com/aussiebroadwan/circle/pkg/jwtx"
	"github.com/aussiebroadwan/circle/pkg/metricsx"
	"github.com/aussiebroadwan/circle/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...BuildVersion=".
var BuildVersion = "v0.1.0"

// Application encapsulates the membership service with all its dependencies
type Application struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metricsx.Metrics

	// Core dependencies
	db     store.Store
	tokens *jwtx.HS256

	// Services
	applicationService *service.ApplicationService
	inviteService      *service.InviteService
	referralService    *service.ReferralService
	userService        *service.UserService
	tokenService       *service.TokenService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "membership-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metricsx.New(),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)
	httpx.LoadRateLimitsFromEnv()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if app.cfg.AdminSecret == "" {
		app.logger.Warn("ADMIN_SECRET_KEY is not set; admin API and page are disabled")
	}

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("membership service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down membership service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("membership service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.NewStore(context.Background(), app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
			app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", app.cfg.DatabaseDriver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initTokens builds the member token signer. Without a configured secret the
// signer uses a random one, so tokens do not survive a restart.
func (app *Application) initTokens() error {
	secret := app.cfg.MemberTokenSecret
	if secret == "" {
		generated, err := cryptox.GenerateHexToken(jwtx.MinSecretLength)
		if err != nil {
			return fmt.Errorf("failed to generate member token secret: %w", err)
		}
		secret = generated
		app.logger.Warn("MEMBER_TOKEN_SECRET is not set; using a random secret for this process")
	}

	hs, err := jwtx.NewHS256([]byte(secret), jwtx.VerifyOptions{
		Issuer:   app.cfg.Issuer,
		Audience: []string{service.MemberAudience},
		Leeway:   30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize member tokens: %w", err)
	}
	app.tokens = hs
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.applicationService = &service.ApplicationService{
		Store:         app.db,
		Notifier:      service.LogNotifier{},
		Metrics:       app.metrics,
		PublicBaseURL: app.cfg.PublicBaseURL,
		InviteTTLDays: app.cfg.InviteTTLDays,
	}
	app.inviteService = &service.InviteService{Store: app.db, Metrics: app.metrics}
	app.referralService = &service.ReferralService{Store: app.db, Metrics: app.metrics}
	app.userService = &service.UserService{Store: app.db}
	app.tokenService = &service.TokenService{
		Signer: app.tokens,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.MemberTokenTTL,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	pages, err := web.New(app.applicationService, app.inviteService, app.cfg.AdminSecret)
	if err != nil {
		return fmt.Errorf("failed to load page templates: %w", err)
	}

	router := httpapi.NewRouter(
		app.tokens,
		app.cfg.AdminSecret,
		BuildVersion,
		app.db,
		app.logger,
		app.metrics,
	)

	// Wire services to router
	router.ApplicationService = app.applicationService
	router.InviteService = app.inviteService
	router.ReferralService = app.referralService
	router.UserService = app.userService
	router.TokenService = app.tokenService
	router.Pages = pages
	router.UseCORS(app.cfg.CORSAllowedOrigins)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
