package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/sigma/cli/cmd/repl"
	"github.com/ardnew/sigma/log"
)

// Repl starts the interactive outline calculator.
type Repl struct {
	Numbers `embed:""`
	Layout  `embed:""`

	File string `arg:"" help:"Outline document to start from, '-' for stdin." name:"file" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	vars, err := r.vars()
	if err != nil {
		return err
	}

	var doc string

	if r.File != "" {
		docs, err := readDocuments(ctx, []string{r.File})
		if err != nil {
			return err
		}

		doc = string(docs[0].data)
	}

	cacheDir := kongContextFrom(ctx).Model.Vars()[CacheIdentifier]

	session := repl.NewSession(doc, vars, r.options())

	return repl.Run(ctx, session, cacheDir,
		log.Default().With(slog.String("component", "repl")))
}
