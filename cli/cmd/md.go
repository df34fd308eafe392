package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/sigma/log"
	"github.com/ardnew/sigma/markdown"
	"github.com/ardnew/sigma/outline"
)

// Md evaluates the fenced outline blocks of Markdown notes.
type Md struct {
	Numbers `embed:""`
	Layout  `embed:""`
	Output  `embed:""`

	Lang  string   `default:"${mdLang}" help:"Info string language of evaluated blocks."`
	Files []string `arg:""              help:"Markdown notes, '-' for stdin."             name:"file"`
}

// Run executes the md command.
func (m *Md) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	docs, err := readDocuments(ctx, m.Files)
	if err != nil {
		return err
	}

	vars, err := m.vars()
	if err != nil {
		return err
	}

	out := streamsFrom(ctx).out
	found := 0

	for _, doc := range docs {
		blocks := markdown.Blocks(doc.data, m.Lang)

		log.DebugContext(ctx, "extracted blocks",
			slog.String("file", doc.name),
			slog.String("lang", m.Lang),
			slog.Int("blocks", len(blocks)),
		)

		for _, block := range blocks {
			if m.titled(2) {
				if found > 0 {
					fmt.Fprintln(out)
				}

				fmt.Fprintf(out, "%s:%d\n", doc.name, block.Line)
			}

			found++

			tree := outline.Build(block.Source, vars)
			if err := m.write(ctx, out, tree, vars, m.Layout); err != nil {
				return err
			}
		}
	}

	if found == 0 {
		return ErrNoBlocks.With(slog.String("lang", m.Lang))
	}

	return nil
}
