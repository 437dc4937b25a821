package app

import (
	"github.com/Douglascrc/AutoFlex/pkg/cache"
	"github.com/Douglascrc/AutoFlex/pkg/database"
	"github.com/Douglascrc/AutoFlex/pkg/events"
	"github.com/Douglascrc/AutoFlex/pkg/logger"
	"github.com/Douglascrc/AutoFlex/pkg/workflows"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all bounded
// contexts. Pass it to each context's route registration during server
// initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "restocking material", "material_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
