// Package cli contains the command line interface of sigma.
//
// # Usage
//
//	sigma [flags] [FILE...]         evaluate outline documents (default)
//	sigma md [flags] NOTE.md...     evaluate ```sigma blocks in Markdown
//	sigma repl [FILE]               interactive calculator
//	sigma serve --addr :8080        HTTP API
//	sigma init [--force]            write the configuration file
//
// Relative document names that do not exist in the working directory are
// looked up in the --path directories, then in the directories listed in
// SIGMA_PATH.
//
// # Configuration
//
// Flag values are also read from config.yaml and config.json in the user
// configuration directory (for example ~/.config/sigma). Keys are flag
// names; see [loadYAML] for the accepted YAML forms. `sigma init` writes the
// current values as a starting point.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: json or text
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include the caller's file and line
//   - --[no-]log-pretty: colorized output
//
// Logs are written to standard error.
//
// # Profiling Options
//
// Profiling is available only when built with the pprof tag:
//
//	go build -tags pprof .
//	sigma --pprof-mode=cpu budget.txt
//
// Profiles are written to --pprof-dir, by default the pprof directory of
// the cache directory.
package cli
