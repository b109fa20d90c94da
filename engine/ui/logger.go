package ui

import (
	"log/slog"

	"github.com/hubastard/hui/engine/internal/logger"
)

// SetLogger configures the logger used by ui and the other engine packages.
// By default nothing is logged. Pass nil to restore that.
//
// Levels in use:
//   - [slog.LevelDebug]: per-frame diagnostics (roots, command counts)
//   - [slog.LevelWarn]: recoverable problems such as a font face that fails
//     to load
//
// Example:
//
//	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger { return logger.Get() }
