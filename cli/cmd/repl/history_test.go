package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{"Bills", modeEval},
		{"  Rent 100  ", modeEval},
		{" list ", modeCtrl},
		{"Bills", modeEval},
		{"   ", modeEval},
	} {
		if err := h.Write(e.Line, e.Mode); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	want := []HistoryEntry{
		{"  Rent 100", modeEval},
		{"list", modeCtrl},
		{"Bills", modeEval},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(data); got != "E:  Rent 100\nC:list\nE:Bills\n" {
		t.Errorf("file = %q", got)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), len(want))
	}

	for i, w := range want {
		got, err := loaded.Entry(i)
		if err != nil || got != w {
			t.Errorf("Entry(%d) = %+v, %v, want %+v", i, got, err, w)
		}
	}

	if _, err := loaded.Entry(len(want)); err != ErrOutOfBounds {
		t.Errorf("Entry past end: err = %v", err)
	}
}

func TestHistory_LoadMissing(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))
	if err := h.Load(); err != nil || h.Len() != 0 {
		t.Errorf("Load() = %v, Len() = %d", err, h.Len())
	}
}
