package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	contextKey    struct{}
	searchPathKey struct{}
	streamsKey    struct{}
)

// WithContext returns a copy of ctx carrying ktx.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithSearchPath returns a copy of ctx carrying the directories searched
// for documents named by a relative path that does not exist in the working
// directory.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

type streams struct {
	in  io.Reader
	out io.Writer
}

// WithStreams returns a copy of ctx whose commands read standard input from
// in and write output to out instead of [os.Stdin] and [os.Stdout].
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) streams {
	s, ok := ctx.Value(streamsKey{}).(streams)
	if !ok {
		return streams{in: os.Stdin, out: os.Stdout}
	}

	return s
}

// document is a named input read into memory.
type document struct {
	name string
	data []byte
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// fileKey identifies a file by device and inode, so the same file reached
// through a symlink or a different relative path is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// readDocuments reads each source in order. Duplicate files are skipped and
// "-" reads standard input once, where it first appears. With no sources,
// standard input is read.
func readDocuments(ctx context.Context, sources []string) ([]document, error) {
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	var (
		docs     = make([]document, 0, len(sources))
		seen     = make(map[fileKey]struct{})
		hasStdin bool
		dirs     = searchPathFrom(ctx)
	)

	for _, src := range sources {
		if src == stdinSource {
			if hasStdin {
				continue
			}

			hasStdin = true

			data, err := io.ReadAll(streamsFrom(ctx).in)
			if err != nil {
				return nil, ErrReadInput.With(slog.String("file", src)).Wrap(err)
			}

			docs = append(docs, document{name: src, data: data})

			continue
		}

		path, err := resolve(src, dirs)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, ErrReadInput.With(slog.String("file", path)).Wrap(err)
		}

		if key, ok := makeFileKey(info); ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrReadInput.With(slog.String("file", path)).Wrap(err)
		}

		docs = append(docs, document{name: src, data: data})
	}

	return docs, nil
}

// resolve returns name itself if it exists or is absolute, otherwise the
// first existing file named name under one of dirs.
func resolve(name string, dirs []string) (string, error) {
	if _, err := os.Stat(name); err == nil || filepath.IsAbs(name) {
		return name, nil
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", ErrNotFound.With(
		slog.String("file", name),
		slog.Any("path", dirs),
	)
}
