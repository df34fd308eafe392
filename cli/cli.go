package cli

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sigma/cli/cmd"
	"github.com/ardnew/sigma/log"
	"github.com/ardnew/sigma/markdown"
	"github.com/ardnew/sigma/pkg"
	"github.com/ardnew/sigma/render"
	"github.com/ardnew/sigma/server"
)

// CLI is the top-level command-line interface of sigma.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path    []string         `help:"Directories searched for documents, before those in ${pathEnv}." placeholder:"DIR" short:"P" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit."                                                         short:"V"`

	Eval  cmd.Eval  `cmd:"" default:"withargs" help:"Evaluate outline documents."`
	Md    cmd.Md    `cmd:""                    help:"Evaluate outline blocks in Markdown notes."`
	Repl  cmd.Repl  `cmd:""                    help:"Start the interactive outline calculator."`
	Serve cmd.Serve `cmd:""                    help:"Serve the HTTP evaluation API."`
	Init  cmd.Init  `cmd:""                    help:"Write the configuration file from current flag values."`
}

// Run parses args and executes the selected command. exit is called by kong
// when parsing ends the program early, such as for --help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	yamlPath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: yamlPath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            pkg.Name + " " + pkg.Version,
		"pathEnv":            pkg.EnvVar("path"),
		"formatEnum":         join(formats()),
		"mdLang":             markdown.DefaultLang,
		"maxBody":            strconv.Itoa(server.DefaultMaxBody),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(loadYAML, yamlPath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	dirs := searchPath(cli.Path)

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, dirs)

	defer cli.Log.start(ctx)()

	// No-op unless built with the pprof tag and a mode is set.
	defer cli.Pprof.start(ctx)()

	log.DebugContext(ctx, "run",
		slog.String("command", ktx.Command()),
		slog.Any("path", dirs),
	)

	return ktx.Run(ctx, &cli)
}

func formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range render.Formats() {
			if !yield(string(f)) {
				return
			}
		}
	}
}

func join(seq iter.Seq[string]) string {
	return strings.Join(slices.Collect(seq), ",")
}
