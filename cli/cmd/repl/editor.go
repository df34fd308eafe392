package repl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/sigma/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand]: it opens the working document
// in $EDITOR and reads back the result.
type editCommand struct {
	ctx    context.Context
	logger log.Logger
	source string
	// edited is the document after the editor exits; empty when the user
	// cleared the file.
	edited string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (c *editCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run writes the document to a temporary file, runs the editor on it and
// reads it back.
func (c *editCommand) Run() error {
	f, err := os.CreateTemp("", "sigma-repl-*.txt")
	if err != nil {
		return err
	}

	path := f.Name()
	defer os.Remove(path)

	_, err = f.WriteString(c.source + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(c.ctx, editor, path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = c.stdin, c.stdout, c.stderr

	if err := cmd.Run(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c.edited = strings.TrimRight(string(data), "\n")

	c.logger.TraceContext(c.ctx, "editor closed",
		slog.String("editor", editor),
		slog.Int("bytes", len(data)),
	)

	return nil
}
