// Package log provides a leveled structured logger based on [log/slog].
//
// Time layout, caller information, level and output format are applied at
// logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.InfoContext(ctx, "document evaluated", slog.Int("lines", 12))
//	logger.ErrorContext(ctx, "render failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with some options overridden, and
// [Logger.With] derives one that adds attributes to every message.
//
// # Package-level Logger
//
// [TraceContext], [DebugContext] and [ErrorContext] log through a default
// logger writing to standard error. [Config] reconfigures it and
// [SetDefault] replaces it.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Messages below the configured level are discarded.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled
// (default), JSON is written as an indented object and text without quotes,
// both colored when the output is a terminal. Values implementing
// [slog.LogValuer] are resolved, and groups are written as nested objects
// or dotted keys.
package log
