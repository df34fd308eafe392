package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ardnew/sigma/log"
)

func newTestServer(opts ...Option) *Server {
	return New(append([]Option{WithLogger(log.Make(io.Discard))}, opts...)...)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequestWithContext(t.Context(), method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}

	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("content type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestEval(t *testing.T) {
	doc := "Rent 1200$\nFood\n  Groceries 250\n  Dining 55.5\n"

	rec := do(t, newTestServer(), http.MethodPost, "/v1/eval", doc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var out Outline
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.Total != 1505.5 {
		t.Errorf("total = %v, want 1505.5", out.Total)
	}

	if len(out.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(out.Rows))
	}

	last := out.Rows[len(out.Rows)-1]
	if last.Source != "Total" || last.Display != "1,505.5" {
		t.Errorf("last row = %+v", last)
	}

	if out.Rows[0].Source != "Rent 1200$" || out.Rows[0].Display != "$1,200" {
		t.Errorf("first row = %+v", out.Rows[0])
	}

	if out.Rows[1].Source != "Groceries 250" || out.Rows[1].Depth != 1 {
		t.Errorf("second row = %+v", out.Rows[1])
	}
}

func TestEval_Query(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/v1/eval?group=false&order=pre", "a 1000\n  b 2000")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var out Outline
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(out.Rows) != 2 || out.Rows[0].Display != "3000" || out.Rows[1].Display != "2000" {
		t.Errorf("rows = %+v", out.Rows)
	}

	for _, target := range []string{
		"/v1/eval?order=sideways",
		"/v1/eval?group=maybe",
		"/v1/eval?locale=!!",
	} {
		if rec := do(t, s, http.MethodPost, target, "a 1"); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestEval_BodyLimit(t *testing.T) {
	s := newTestServer(WithMaxBody(16))

	rec := do(t, s, http.MethodPost, "/v1/eval", strings.Repeat("x 1\n", 10))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestMarkdown(t *testing.T) {
	md := "# Notes\n\n```sigma\na 1\nb 2\n```\n\n```sigma\nx = 5\ny x * 2\n```\n"

	rec := do(t, newTestServer(), http.MethodPost, "/v1/markdown", md)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var out struct {
		Blocks []Outline `json:"blocks"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(out.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(out.Blocks))
	}

	if out.Blocks[0].Total != 3 || out.Blocks[0].Line != 3 {
		t.Errorf("block 0 = total %v line %d", out.Blocks[0].Total, out.Blocks[0].Line)
	}

	if out.Blocks[1].Total != 15 {
		t.Errorf("block 1 total = %v, want 15", out.Blocks[1].Total)
	}
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		display string
		error   string
	}{
		{name: "arithmetic", body: "2 + 3 * 4\n", display: "14"},
		{name: "grouping", body: "1000 * 1000", display: "1,000,000"},
		{name: "string", body: "'a' + 1", display: "a1"},
		{name: "unknown function", body: "nope(1)", display: "0", error: `unknown function "nope"`},
	}

	s := newTestServer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/expr", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}

			var out struct {
				Display string `json:"display"`
				Error   string `json:"error"`
			}

			if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&out); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if out.Display != tt.display || out.Error != tt.error {
				t.Errorf("got %+v, want display=%q error=%q", out, tt.display, tt.error)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	if rec := do(t, newTestServer(), http.MethodGet, "/v1/eval", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
