package cmd

import (
	"context"
	"encoding"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/sigma/log"
	"github.com/ardnew/sigma/profile"
)

// defaultConfigIndent is the indent width of the generated configuration.
const defaultConfigIndent = 2

// Init writes the current flag values to the YAML configuration file.
type Init struct {
	Force bool `help:"Overwrite an existing configuration file." short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, configValues(ktx),
		yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("keys", strings.Count(string(data), "\n")),
	)

	return nil
}

// configValues collects the value of every configurable flag in the
// application, keyed by flag name. A name shared by several commands takes
// the value of the first one found.
func configValues(ktx *kong.Context) yaml.MapSlice {
	var (
		items yaml.MapSlice
		seen  = make(map[string]bool)
	)

	skip := []string{"help", "version", "force", profile.Tag}

	var visit func(node *kong.Node)

	visit = func(node *kong.Node) {
		for _, flag := range node.Flags {
			if flag.Hidden || seen[flag.Name] ||
				slices.ContainsFunc(skip, func(s string) bool {
					return strings.HasPrefix(flag.Name, s)
				}) {
				continue
			}

			seen[flag.Name] = true

			if val, ok := configValue(ktx.FlagValue(flag)); ok {
				items = append(items, yaml.MapItem{Key: flag.Name, Value: val})
			}
		}

		for _, child := range node.Children {
			visit(child)
		}
	}

	visit(ktx.Model.Node)

	return items
}

// configValue converts a flag value to one the resolver reads back. Empty
// strings and lists are omitted.
func configValue(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case []string:
		return v, len(v) > 0
	case bool, int, int64, float64:
		return v, true
	case encoding.TextMarshaler:
		text, err := v.MarshalText()

		return string(text), err == nil && len(text) > 0
	default:
		return nil, false
	}
}
