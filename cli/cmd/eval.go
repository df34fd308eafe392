package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/sigma/log"
	"github.com/ardnew/sigma/outline"
)

// Eval evaluates outline documents and renders the results.
type Eval struct {
	Numbers `embed:""`
	Layout  `embed:""`
	Output  `embed:""`

	Files []string `arg:"" help:"Outline documents, '-' for stdin. Relative names are also looked up in the search path." name:"file" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	docs, err := readDocuments(ctx, e.Files)
	if err != nil {
		return err
	}

	vars, err := e.vars()
	if err != nil {
		return err
	}

	out := streamsFrom(ctx).out

	for i, doc := range docs {
		if e.titled(len(docs)) {
			if i > 0 {
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out, doc.name)
		}

		tree := outline.Build(string(doc.data), vars)

		log.DebugContext(ctx, "evaluated document",
			slog.String("file", doc.name),
			slog.Int("lines", tree.Len()-1),
			slog.Float64("total", tree.Total()),
		)

		if err := e.write(ctx, out, tree, vars, e.Layout); err != nil {
			return err
		}
	}

	return nil
}
