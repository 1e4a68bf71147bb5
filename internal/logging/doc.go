// Package logging configures the slog loggers used by shardcfg.
//
// Human-facing output goes through [Handler], a compact text handler that
// colors levels when the destination is a terminal. Machine-facing output
// uses the standard JSON handler. [New] can fan a record out to both, which
// is how --log-file works:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		File:   f,
//	})
//
// Commands put the logger on the context with [NewContext]; library code
// retrieves it with [FromContext] and falls back to a discarding logger.
//
// Tests use [ForTest] so log lines show up only for failing tests or -v.
package logging
