package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardnew/sigma/log"
	"github.com/ardnew/sigma/server"
)

// Serve runs the HTTP evaluation API until interrupted.
type Serve struct {
	Numbers `embed:""`

	Addr    string `default:":8080"           help:"Listen address."             short:"a"`
	MaxBody int64  `default:"${maxBody}"      help:"Request body limit in bytes."`
}

// Run executes the serve command.
func (s *Serve) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tag, err := s.tag()
	if err != nil {
		return err
	}

	srv := server.New(
		server.WithLogger(log.Default().With(slog.String("component", "server"))),
		server.WithLocale(tag),
		server.WithGrouping(s.Group),
		server.WithMaxBody(s.MaxBody),
	)

	if err := srv.ListenAndServe(ctx, s.Addr); err != nil {
		return ErrServe.With(slog.String("addr", s.Addr)).Wrap(err)
	}

	return nil
}
