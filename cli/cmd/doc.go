// Package cmd implements the sigma subcommands: eval, md, repl, serve and
// init.
//
// Commands receive a [context.Context] carrying the parsed [kong.Context]
// (see [WithContext]) and the document search path (see [WithSearchPath]).
package cmd

// Kong variable identifiers shared with package cli.
const (
	// CacheIdentifier names the variable holding the cache directory.
	CacheIdentifier = "cache"
	// ConfigIdentifier names the variable holding the YAML configuration
	// file path.
	ConfigIdentifier = "config"
)
