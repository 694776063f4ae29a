// Package cli is the command line front end of the commons packages. Each
// subcommand parses its arguments as YAML values and prints the result of
// one library call, which makes it easy to see how compare, equality,
// booleans, objects and strutil treat a given input.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/commons/envutil"
	"github.com/amp-labs/commons/errors"
	"github.com/amp-labs/commons/logger"
	ucli "github.com/urfave/cli/v3"
)

// EpsilonEnvVar supplies the default float tolerance for compare and equal.
const EpsilonEnvVar = "COMMONS_EPSILON"

// App holds what the commands share.
type App struct {
	logger *slog.Logger
	out    io.Writer
}

// Option configures an App.
type Option func(*App)

// WithLogger makes commands log to l instead of the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithWriter sends command output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// New builds the root command.
func New(version string, opts ...Option) *ucli.Command {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	return &ucli.Command{
		Name:    "commons",
		Usage:   "Compare, convert and render values from the command line",
		Version: version,
		Writer:  app.out,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "YAML or JSON file whose env object overrides the environment",
				Sources: ucli.EnvVars("COMMONS_ENV_FILE"),
			},
		},
		Before: app.loadEnvFile,
		Commands: []*ucli.Command{
			app.compareCommand(),
			app.sortCommand(),
			app.equalCommand(),
			app.quoteCommand(),
			app.unquoteCommand(),
			app.boolCommand(),
			app.showCommand(),
			app.identityCommand(),
		},
	}
}

// Run builds the root command and runs it with args, where args[0] is the
// program name.
func Run(ctx context.Context, version string, args []string, opts ...Option) error {
	return New(version, opts...).Run(ctx, args)
}

func (a *App) loadEnvFile(ctx context.Context, cmd *ucli.Command) (context.Context, error) {
	path := cmd.String("env-file")
	if path == "" {
		return ctx, nil
	}

	vars, err := envutil.LoadEnvFile(path)
	if err != nil {
		return ctx, logger.AnnotateError(err, "env_file", path)
	}

	ctx = envutil.WithEnvOverrides(ctx, vars)

	// Logging was configured from the process environment before the file
	// was read; redo it so LOG_* entries in the file take effect.
	if a.logger == nil {
		logger.ConfigureLogging(ctx, cmd.Name)
	}

	return ctx, nil
}

func (a *App) log(ctx context.Context) *slog.Logger {
	if a.logger == nil {
		return logger.Get(ctx)
	}

	if name, ok := logger.GetCommand(ctx); ok {
		return a.logger.With("command", name)
	}

	return a.logger
}

// action wraps fn with the per-command logging every subcommand shares.
// Failures come back annotated with the command and its arguments.
func (a *App) action(fn ucli.ActionFunc) ucli.ActionFunc {
	return func(ctx context.Context, cmd *ucli.Command) error {
		ctx = logger.WithCommand(ctx, cmd.Name)
		args := cmd.Args().Slice()

		a.log(ctx).Debug("running command", "args", args)

		if err := fn(ctx, cmd); err != nil {
			a.log(ctx).Debug("command failed", "error", err)

			return logger.AnnotateError(err, "command", cmd.Name, "args", args)
		}

		return nil
	}
}

func (a *App) println(cmd *ucli.Command, value any) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, value)

	return err
}

// epsilon returns --epsilon when given, else the COMMONS_EPSILON default.
func epsilon(ctx context.Context, cmd *ucli.Command) (float64, error) {
	var (
		eps float64
		err error
	)

	if cmd.IsSet("epsilon") {
		eps = cmd.Float64("epsilon")
	} else {
		eps, err = envutil.Float64(ctx, EpsilonEnvVar, envutil.Default(0.0)).Value()
		if err != nil {
			return 0, err
		}
	}

	if eps < 0 {
		return 0, fmt.Errorf("%w: epsilon must not be negative, got %v", errors.ErrOutOfRange, eps)
	}

	return eps, nil
}
