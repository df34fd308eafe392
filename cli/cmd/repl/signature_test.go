package repl

import (
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		cursor   int
		wantName string
		wantArg  int
		wantIn   bool
	}{
		{"no_call", "1 + 2", 5, "", 0, false},
		{"first_arg", "sqrt(", 5, "sqrt", 0, true},
		{"third_arg", "clamp(x, 1, ", 12, "clamp", 2, true},
		{"nested_inner", "max(1, sqrt(4", 13, "sqrt", 0, true},
		{"nested_closed", "max(1, sqrt(4), ", 16, "max", 2, true},
		{"closed", "sqrt(4) + 1", 11, "", 0, false},
		{"grouping_paren", "(1 + 2", 6, "", 0, false},
		{"after_operator", "2 * abs(", 8, "abs", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)
			if got.inCall != tt.wantIn || got.name != tt.wantName ||
				got.argIndex != tt.wantArg {
				t.Errorf("detectFunctionCall(%q, %d) = %+v", tt.input, tt.cursor, got)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	if got := renderSignatureHint("nope", 0); got != "" {
		t.Errorf("unknown function hint = %q", got)
	}

	got := renderSignatureHint("clamp", 1)
	for _, part := range []string{"clamp", "x", "lo", "hi"} {
		if !strings.Contains(got, part) {
			t.Errorf("hint %q missing %q", got, part)
		}
	}
}
