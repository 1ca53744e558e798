// Package logging builds the slog stack for the cfgctl CLI: a
// colorized terminal handler, a JSON handler for machine consumption,
// and a fan-out handler for writing both at once.
//
// Loggers are built with [New]:
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//	})
//	logger.Debug("configuration merged", "environment", "dev")
//
// Commands carry their logger in the context via [NewContext] and
// retrieve it with [FromContext]. Tests use [ForTest], which routes
// records through t.Log, or [NewDiscard] to silence output entirely.
package logging
