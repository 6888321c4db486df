package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/database"
	"github.com/thenoetrevino/leadboard/internal/mockapi"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/pipeline"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	repo   *database.Repository
	config *config.Config
	logger *slog.Logger

	// LeadService talks to the store directly. Used for seeding and
	// administrative commands.
	LeadService leadservice.Service

	// API is LeadService behind the simulated network. The board reads and
	// writes through it.
	API *mockapi.API

	// Notifications collects transient messages for the TUI.
	Notifications *notify.Center
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	c := &appConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	svc := leadservice.NewService(repo)

	return &App{
		repo:        repo,
		config:      c.cfg,
		logger:      c.logger,
		LeadService: svc,
		API: mockapi.New(svc, mockapi.Options{
			Latency:     c.cfg.MockAPI.LatencyOrDefault(),
			Jitter:      c.cfg.MockAPI.Jitter,
			FailureRate: c.cfg.MockAPI.FailureRate,
			Rand:        c.rand,
			Logger:      c.logger,
		}),
		Notifications: notify.NewCenter(c.cfg.Notifications.TTL),
	}
}

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config {
	return a.config
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// NewBoard builds a pipeline board wired to the mock API and the
// notification center.
func (a *App) NewBoard(opts ...pipeline.Option) *pipeline.Board {
	base := []pipeline.Option{
		pipeline.WithNotifier(a.Notifications),
		pipeline.WithActivationDistance(a.config.Board.ActivationDistance),
		pipeline.WithTitles(a.config.Board.Titles()),
		pipeline.WithLogger(a.logger),
	}
	return pipeline.New(a.API, append(base, opts...)...)
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
