// Package cli wires the sidetabs command-line tools.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/sidetabs/internal/cli/styles"
	"github.com/bnema/sidetabs/internal/domain/build"
	"github.com/bnema/sidetabs/internal/domain/repository"
	"github.com/bnema/sidetabs/internal/infrastructure/config"
	"github.com/bnema/sidetabs/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/sidetabs/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp creates a new CLI application. The database is opened on first use.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, string(cfg.Logging.Format))
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	if cfg.Database.Path == "" {
		path, err := config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = path
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		db:      sqlite.NewLazyDB(cfg.Database.Path),
		ctx:     ctx,
	}, nil
}

// WindowValues returns the persistent window value store.
func (a *App) WindowValues() (repository.WindowValueRepository, error) {
	repo, err := a.db.WindowValues(a.ctx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return repo, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	if err := config.Init(); err != nil {
		return config.GetManager(), config.DefaultConfig(), err
	}
	return config.GetManager(), config.Get(), nil
}
