package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/outline"
)

const budget = "Bills\n  Rent 100$\n  Food 20\nFun 5"

func setup(doc string) (*outline.Tree, Formatter) {
	return outline.Build(doc, lang.NewVars()), lang.NewVars()
}

func TestText(t *testing.T) {
	tree, f := setup(budget)

	var buf bytes.Buffer
	if err := Text(&buf, tree, f, Options{Index: true}); err != nil {
		t.Fatalf("Text: %v", err)
	}

	want := "" +
		"2\t  Rent 100$\t$100\n" +
		"3\t  Food 20\t20\n" +
		"1\tBills\t120\n" +
		"4\tFun 5\t5\n" +
		"\tTotal\t125\n"

	if got := buf.String(); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_PreOrderWithErrors(t *testing.T) {
	tree, f := setup("a 1\n  b foo(2)")

	var buf bytes.Buffer
	if err := Text(&buf, tree, f, Options{Order: outline.PreOrder}); err != nil {
		t.Fatalf("Text: %v", err)
	}

	want := "a 1\t1\n  b foo(2)\t0\tunknown function \"foo\"\n"

	if got := buf.String(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestCSV(t *testing.T) {
	tree, f := setup(budget)

	var buf bytes.Buffer
	if err := CSV(&buf, tree, f, Options{}); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	want := "" +
		"row,source,result\n" +
		"2,Rent 100$,100\n" +
		"3,Food 20,20\n" +
		"1,Bills,120\n" +
		"4,Fun 5,5\n" +
		",Total,125\n"

	if got := buf.String(); got != want {
		t.Errorf("CSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestTable(t *testing.T) {
	tree, f := setup(budget)

	var buf bytes.Buffer
	if err := Table(&buf, tree, f, Options{Index: true}); err != nil {
		t.Fatalf("Table: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"#", "line", "result", "Rent 100$", "$100", "Total", "125"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "note") {
		t.Errorf("note column without diagnostics:\n%s", out)
	}

	// Rows follow post-order: the root is the last data row.
	if strings.Index(out, "Rent") > strings.Index(out, "Bills") ||
		strings.Index(out, "Fun") > strings.Index(out, "Total") {
		t.Errorf("unexpected row order:\n%s", out)
	}
}

func TestTable_Notes(t *testing.T) {
	tree, f := setup("a 'oops\nb 2")

	var buf bytes.Buffer
	if err := Table(&buf, tree, f, Options{}); err != nil {
		t.Fatalf("Table: %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "note") ||
		!strings.Contains(out, "unterminated string") {
		t.Errorf("missing diagnostic column:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	tree, f := setup(budget + "\nBroken 0 / 0")

	var buf bytes.Buffer
	if err := JSON(&buf, tree, f, Options{Indent: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var root struct {
		Source   string `json:"source"`
		Result   any    `json:"result"`
		Children []struct {
			Source   string `json:"source"`
			Value    any    `json:"value"`
			Children []struct {
				Currency bool `json:"currency"`
			} `json:"children"`
		} `json:"children"`
	}

	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	if root.Source != "Total" || root.Result != "NaN" {
		t.Errorf("root = %q %v", root.Source, root.Result)
	}

	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}

	if !root.Children[0].Children[0].Currency {
		t.Error("Rent should be currency")
	}

	if root.Children[1].Value != 5.0 {
		t.Errorf("Fun value = %v", root.Children[1].Value)
	}
}

func TestYAML(t *testing.T) {
	tree, f := setup(budget)

	var buf bytes.Buffer
	if err := YAML(t.Context(), &buf, tree, f, Options{Indent: 2}); err != nil {
		t.Fatalf("YAML: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"source: Total", "result: 125", "source: Rent 100$", "currency: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q:\n%s", want, out)
		}
	}
}

func TestWrite(t *testing.T) {
	tree, f := setup(budget)

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(t.Context(), &buf, format, tree, f, Options{}); err != nil {
				t.Fatalf("Write: %v", err)
			}

			if !strings.Contains(buf.String(), "Total") {
				t.Errorf("output missing root:\n%s", buf.String())
			}
		})
	}

	if err := Write(t.Context(), &bytes.Buffer{}, "xml", tree, f, Options{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", got, err)
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error")
	}
}
