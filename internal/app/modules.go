package app

import (
	"context"

	"github.com/goalverse/goalverse/internal/config"
	"github.com/goalverse/goalverse/internal/goals"
	"github.com/goalverse/goalverse/internal/guidance"
	"github.com/goalverse/goalverse/internal/storage"
	"go.uber.org/zap"
)

// CoreModule holds the core application components
type CoreModule struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *storage.DB
}

// App holds the application components grouped by concern.
type App struct {
	Core     CoreModule
	Goals    *goals.Service
	Guidance *guidance.Engine
	Ctx      context.Context
	Cancel   context.CancelFunc
}
