package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler. Styles are bound to a
// renderer for the handler's output, so colors are dropped when the output
// is not a terminal.
type palette struct {
	key, str, num, yes, no, dur, tim lipgloss.Style
	level                            map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key: fg("8"),
		str: fg("6"),
		num: fg("3"),
		yes: fg("2"),
		no:  fg("1"),
		dur: fg("5"),
		tim: fg("4"),
		level: map[slog.Level]lipgloss.Style{
			slog.LevelError: fg("1").Bold(true),
			slog.LevelWarn:  fg("3"),
			slog.LevelInfo:  fg("2"),
			slog.LevelDebug: fg("4"),
		},
	}
}

func (p palette) levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return p.level[slog.LevelError]
	case level >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	default:
		return p.level[slog.LevelDebug]
	}
}

// prettyBase holds what both pretty handlers share: options, output, the
// attributes and groups added with WithAttrs and WithGroup.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyBase(w io.Writer, opts *slog.HandlerOptions) prettyBase {
	return prettyBase{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  newPalette(w),
	}
}

func (b prettyBase) enabled(level slog.Level) bool {
	floor := slog.LevelInfo
	if b.opts.Level != nil {
		floor = b.opts.Level.Level()
	}

	return level >= floor
}

// builtin returns the record's built-in attributes after ReplaceAttr.
func (b prettyBase) builtin(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if b.opts.AddSource {
		frame := r.Source()
		if frame != nil && frame.File != "" {
			attrs = append(attrs, slog.String(slog.SourceKey,
				frame.File+":"+strconv.Itoa(frame.Line)))
		}
	}

	attrs = append(attrs, slog.String(slog.MessageKey, r.Message))

	if b.opts.ReplaceAttr == nil {
		return attrs
	}

	out := attrs[:0]

	for _, a := range attrs {
		if a = b.opts.ReplaceAttr(nil, a); !a.Equal(slog.Attr{}) {
			out = append(out, a)
		}
	}

	return out
}

// collect returns the handler's stored attributes followed by the record's,
// nested under the handler's groups.
func (b prettyBase) collect(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	for i := len(b.groups) - 1; i >= 0; i-- {
		if len(attrs) == 0 {
			break
		}

		attrs = []slog.Attr{{Key: b.groups[i], Value: slog.GroupValue(attrs...)}}
	}

	return append(b.attrs[:len(b.attrs):len(b.attrs)], attrs...)
}

func (b prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	if len(b.groups) > 0 {
		// Attributes added inside a group nest under it.
		for i := len(b.groups) - 1; i >= 0; i-- {
			attrs = []slog.Attr{{Key: b.groups[i], Value: slog.GroupValue(attrs...)}}
		}
	}

	b.attrs = append(b.attrs[:len(b.attrs):len(b.attrs)], attrs...)

	return b
}

func (b prettyBase) withGroup(name string) prettyBase {
	if name != "" {
		b.groups = append(b.groups[:len(b.groups):len(b.groups)], name)
	}

	return b
}

func (b prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.w.Write(buf.Bytes())

	return err
}

// prettyTextHandler writes key=value pairs without quotes, colored by kind.
// Group members are written with dotted keys.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyTextHandler {
	return &prettyTextHandler{newPrettyBase(w, opts)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.builtin(r) {
		h.writeAttr(buf, "", a, r.Level)
	}

	for _, a := range h.collect(r) {
		h.writeAttr(buf, "", a, r.Level)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr, level slog.Level) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, member := range a.Value.Group() {
			h.writeAttr(buf, prefix, member, level)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.pal.key.Render(prefix + a.Key))
	buf.WriteByte('=')

	if prefix == "" && a.Key == slog.LevelKey {
		buf.WriteString(h.pal.levelStyle(level).Render(a.Value.String()))

		return
	}

	buf.WriteString(h.pal.render(a.Value))
}

// render formats a resolved, non-group value in the color of its kind.
func (p palette) render(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())

	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")

	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())

	case slog.KindTime:
		return p.tim.Render(v.Time().String())

	default:
		return p.str.Render(v.String())
	}
}

// prettyJSONHandler writes one indented JSON-like object per record, with
// unquoted colored values and nested objects for groups.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyBase(w, opts)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	attrs := append(h.builtin(r), h.collect(r)...)

	h.writeObject(buf, attrs, 1, r.Level)

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func (h *prettyJSONHandler) writeObject(buf *bytes.Buffer, attrs []slog.Attr, depth int, level slog.Level) {
	indent := strings.Repeat("  ", depth)

	buf.WriteString("{")

	first := true

	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		fmt.Fprintf(buf, "\n%s%s: ", indent, h.pal.key.Render(a.Key))

		switch {
		case a.Value.Kind() == slog.KindGroup:
			h.writeObject(buf, a.Value.Group(), depth+1, level)
		case depth == 1 && a.Key == slog.LevelKey:
			buf.WriteString(h.pal.levelStyle(level).Render(a.Value.String()))
		default:
			buf.WriteString(h.pal.render(a.Value))
		}
	}

	if !first {
		buf.WriteString("\n" + strings.Repeat("  ", depth-1))
	}

	buf.WriteString("}")
}
