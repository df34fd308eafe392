package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/sigma/log"
)

func ExampleMake() {
	ctx := context.Background()

	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.InfoContext(ctx, "document evaluated", slog.Int("lines", 4), slog.Float64("total", 125))
	logger.DebugContext(ctx, "hidden below the default level")

	// Output:
	// level=INFO msg="document evaluated" lines=4 total=125
}

func ExampleLogger_With() {
	ctx := context.Background()

	logger := log.Make(os.Stdout,
		log.WithTimeLayout("none"),
		log.WithPretty(false)).
		With(slog.String("component", "server"))

	logger.WarnContext(ctx, "body too large", slog.Int64("limit", 1<<20))

	// Output:
	// {"level":"WARN","msg":"body too large","component":"server","limit":1048576}
}

func ExampleLogger_Wrap() {
	ctx := context.Background()

	base := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	verbose := base.Wrap(log.WithLevel(log.LevelTrace))

	base.TraceContext(ctx, "dropped")
	verbose.TraceContext(ctx, "repl keypress", slog.String("key", "tab"))

	// Output:
	// level=TRACE msg="repl keypress" key=tab
}
