package app

import (
	"github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/pkg/config"
	"github.com/ghuser/labelpress/pkg/database"
	"github.com/ghuser/labelpress/pkg/events"
	"github.com/ghuser/labelpress/pkg/logger"
	"github.com/ghuser/labelpress/pkg/workflows"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration function during server startup.
//
// Logging: app.Logger is backed by a trace-aware handler, so use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "processing batch", "batch_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
