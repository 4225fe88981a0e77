package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goalverse/goalverse/internal/config"
	"github.com/goalverse/goalverse/internal/goals"
	"github.com/goalverse/goalverse/internal/guidance"
	"github.com/goalverse/goalverse/internal/logging"
	"github.com/goalverse/goalverse/internal/storage"
	"github.com/goalverse/goalverse/internal/versesource"
	"go.uber.org/zap"
)

// NewApp initializes and returns a new App instance.
func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logDir := filepath.Join(cfg.GoalverseDir, "logs")
		logFile = filepath.Join(logDir, fmt.Sprintf("goalverse-%s.log", time.Now().Format("2006-01-02")))
	} else if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(cfg.GoalverseDir, logFile)
	}

	// Ensure log directory exists before initializing logger
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(logFile), err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, logFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := storage.NewDB(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	source := versesource.NewClient(
		cfg.APIBaseURL,
		cfg.TranslationEdition,
		cfg.OriginalEdition,
		cfg.RequestTimeout,
		logger,
	)
	engine := guidance.NewEngine(source, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		Core: CoreModule{
			Config: cfg,
			Logger: logger,
			DB:     db,
		},
		Goals:    goals.NewService(db),
		Guidance: engine,
		Ctx:      ctx,
		Cancel:   cancel,
	}, nil
}

// Close gracefully shuts down the application resources.
func (a *App) Close() {
	if a.Cancel != nil {
		a.Cancel()
	}

	if a.Core.DB != nil {
		if err := a.Core.DB.Close(); err != nil {
			a.Core.Logger.Error("Failed to close database connection", zap.Error(err))
		}
	}
	if a.Core.Logger != nil {
		if err := a.Core.Logger.Sync(); err != nil {
			// Sync on stderr-backed cores fails on some platforms; only
			// surface errors that are not of that kind.
			if !strings.Contains(err.Error(), "sync /dev/stderr") &&
				!strings.Contains(err.Error(), "bad file descriptor") {
				fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
			}
		}
	}
}

// ContextWithLogger returns a new context with the application's logger.
func (a *App) ContextWithLogger(ctx context.Context) context.Context {
	return logging.ContextWithLogger(ctx, a.Core.Logger)
}

// LoggerFromContext retrieves the logger from the given context, or returns
// the default app logger.
func (a *App) LoggerFromContext(ctx context.Context) *zap.Logger {
	if logger, ok := logging.LoggerFromContext(ctx); ok {
		return logger
	}
	return a.Core.Logger
}
