package cmd

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/outline"
	"github.com/ardnew/sigma/render"
)

// Numbers holds the number formatting flags.
type Numbers struct {
	Group  bool   `default:"true"  help:"Group digits in displayed results." negatable:""`
	Locale string `default:"en-US" help:"Locale (BCP 47) of displayed results."`
}

func (n Numbers) tag() (language.Tag, error) {
	tag, err := language.Parse(n.Locale)
	if err != nil {
		return language.Und, ErrLocale.With(slog.String("locale", n.Locale)).Wrap(err)
	}

	return tag, nil
}

// vars returns an empty variable store that formats numbers as configured.
func (n Numbers) vars() (*lang.Vars, error) {
	tag, err := n.tag()
	if err != nil {
		return nil, err
	}

	return lang.NewVars(lang.WithLocale(tag), lang.WithGrouping(n.Group)), nil
}

// Layout holds the row arrangement flags.
type Layout struct {
	Index bool   `help:"Show row numbers."                       short:"n"`
	Order string `default:"post" enum:"post,pre" help:"Row order: children before (post) or after (pre) their parent."`
}

func (l Layout) options() render.Options {
	order, _ := outline.ParseOrder(l.Order)

	return render.Options{Order: order, Index: l.Index}
}

// Output holds the output format flags.
type Output struct {
	Format string `default:"table" enum:"${formatEnum}" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                          help:"Indent width of JSON and YAML output, 0 for compact."`
}

// write renders tree to w.
func (o Output) write(
	ctx context.Context,
	w io.Writer,
	tree *outline.Tree,
	vars *lang.Vars,
	layout Layout,
) error {
	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return ErrRender.Wrap(err)
	}

	opts := layout.options()
	opts.Indent = o.Indent

	if err := render.Write(ctx, w, format, tree, vars, opts); err != nil {
		return ErrRender.With(slog.String("format", o.Format)).Wrap(err)
	}

	return nil
}

// titled reports whether a heading is written before each rendered
// document. Structured formats are written back to back.
func (o Output) titled(n int) bool {
	switch render.Format(o.Format) {
	case render.FormatTable, render.FormatText:
		return n > 1
	default:
		return false
	}
}
