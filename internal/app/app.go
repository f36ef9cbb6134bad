package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/adminde/household-data/internal/assembler"
	"github.com/adminde/household-data/internal/config"
	"github.com/adminde/household-data/internal/lookup"
	"github.com/adminde/household-data/internal/publish"
)

// Publisher uploads a written manifest and returns its URL.
type Publisher interface {
	Publish(ctx context.Context, file string) (string, error)
}

// PublisherFactory creates the Publisher for a publish configuration.
type PublisherFactory func(ctx context.Context, cfg publish.Config) (Publisher, error)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	config       *Config
	loader       config.Loader
	assembler    *assembler.Assembler
	newPublisher PublisherFactory
}

// Option customises an App.
type Option func(*App)

// WithLookupTables replaces the built-in reference tables.
func WithLookupTables(tables *lookup.Tables) Option {
	return func(a *App) {
		a.assembler = assembler.New(tables)
	}
}

// WithPublisherFactory replaces the S3 publisher.
func WithPublisherFactory(f PublisherFactory) Option {
	return func(a *App) {
		a.newPublisher = f
	}
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		assembler: assembler.New(nil),
		newPublisher: func(ctx context.Context, cfg publish.Config) (Publisher, error) {
			return publish.New(ctx, cfg)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
