// Package logging builds the service's slog logger and carries the
// request-scoped logger through contexts.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "recipe created", slog.Int64("recipe_id", id))
//
// Error logs name the operation and the entity involved and carry the full
// chain under "error":
//
//	logger.ErrorContext(ctx, "failed to add ingredient",
//	    slog.String("operation", "AddIngredient"),
//	    slog.Int64("recipe_id", recipeID),
//	    slog.Int64("ingredient_id", ingredientID),
//	    slog.Any("error", err),
//	)
//
// Every handler writes through the same masq ReplaceAttr, so credentials that
// slip into attributes are redacted by field name or by value pattern.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/recipebox/internal/platform/config"
)

type contextKey struct{}

// New builds a logger writing cfg.Format ("text", otherwise JSON) at
// cfg.Level. Debug loggers also report the source location.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel accepts any slog level name, case-insensitively and with an
// optional offset such as "warn+2". Anything else is info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
