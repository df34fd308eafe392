package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/markdown"
	"github.com/ardnew/sigma/outline"
	"github.com/ardnew/sigma/render"
)

// Row is one line of an evaluated outline in presentation order.
type Row struct {
	Source  string `json:"source"`
	Display string `json:"display"`
	Error   string `json:"error,omitempty"`
	Row     int    `json:"row"`
	Depth   int    `json:"depth"`
}

// Outline is the response body of an evaluated outline document.
type Outline struct {
	Tree  *render.Node  `json:"tree"`
	Rows  []Row         `json:"rows"`
	Total render.Number `json:"total"`
	Line  int           `json:"line,omitempty"`
}

// ExprResult is the response body of a single evaluated expression.
type ExprResult struct {
	Value   lang.Value `json:"value"`
	Display string     `json:"display"`
	Error   string     `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	order, vars, ok := s.query(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, evaluate(string(body), vars, order, 0))
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	order, vars, ok := s.query(w, r)
	if !ok {
		return
	}

	blocks := markdown.Blocks(body, r.URL.Query().Get("lang"))

	out := make([]Outline, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, evaluate(block.Source, vars, order, block.Line))
	}

	writeJSON(w, http.StatusOK, map[string]any{"blocks": out})
}

func (s *Server) handleExpr(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	_, vars, ok := s.query(w, r)
	if !ok {
		return
	}

	line := strings.TrimRight(string(body), "\r\n")

	value, err := lang.Eval(line, vars)

	res := ExprResult{Value: value, Display: vars.Format(value.Float())}
	if value.IsString() {
		res.Display = value.Str()
	}

	if err != nil {
		res.Error = err.Error()
	}

	writeJSON(w, http.StatusOK, res)
}

// evaluate builds doc and collects its rows. Each block of a request reuses
// vars; Build resets it first.
func evaluate(doc string, vars *lang.Vars, order outline.Order, line int) Outline {
	tree := outline.Build(doc, vars)

	out := Outline{
		Tree:  render.Nest(tree, vars),
		Total: render.Number(tree.Total()),
		Line:  line,
		Rows:  []Row{},
	}

	for i := range tree.Rows(order) {
		l := tree.Line(i)

		row := Row{
			Source:  strings.TrimLeft(l.Source, " "),
			Display: vars.Format(l.Result),
			Row:     l.Row,
			Depth:   tree.Depth(i),
		}

		if l.Currency {
			row.Display = "$" + row.Display
		}

		if l.Err != nil {
			row.Error = l.Err.Error()
		}

		out.Rows = append(out.Rows, row)
	}

	return out
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
		} else {
			jsonError(w, "failed to read request body", http.StatusBadRequest)
		}

		return nil, false
	}

	return body, true
}

// query reads the presentation parameters shared by every endpoint and
// returns a fresh variable store configured by them.
func (s *Server) query(w http.ResponseWriter, r *http.Request) (outline.Order, *lang.Vars, bool) {
	q := r.URL.Query()

	order, ok := outline.ParseOrder(q.Get("order"))
	if !ok {
		jsonError(w, "invalid order: "+q.Get("order"), http.StatusBadRequest)

		return order, nil, false
	}

	group := s.group
	if v := q.Get("group"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "invalid group: "+v, http.StatusBadRequest)

			return order, nil, false
		}

		group = b
	}

	locale := s.locale
	if v := q.Get("locale"); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			jsonError(w, "invalid locale: "+v, http.StatusBadRequest)

			return order, nil, false
		}

		locale = tag
	}

	return order, lang.NewVars(lang.WithGrouping(group), lang.WithLocale(locale)), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
