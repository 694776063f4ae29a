package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/amp-labs/commons/booleans"
	"github.com/amp-labs/commons/compare"
	"github.com/amp-labs/commons/equality"
	"github.com/amp-labs/commons/errors"
	"github.com/amp-labs/commons/objects"
	"github.com/amp-labs/commons/strutil"
	ucli "github.com/urfave/cli/v3"
)

func epsilonFlag() ucli.Flag {
	return &ucli.Float64Flag{
		Name:  "epsilon",
		Usage: "treat floats closer than this as equal (default from " + EpsilonEnvVar + ")",
	}
}

func foldFlag() ucli.Flag {
	return &ucli.BoolFlag{
		Name:    "fold",
		Aliases: []string{"i"},
		Usage:   "ignore case in strings and runes",
	}
}

func orderingFlags() []ucli.Flag {
	return []ucli.Flag{
		epsilonFlag(),
		foldFlag(),
		&ucli.BoolFlag{
			Name:  "natural",
			Usage: "order runs of digits in strings by their numeric value",
		},
	}
}

func compareOptions(ctx context.Context, cmd *ucli.Command) ([]compare.Option, error) {
	eps, err := epsilon(ctx, cmd)
	if err != nil {
		return nil, err
	}

	opts := []compare.Option{compare.WithEpsilon(eps)}

	if cmd.Bool("fold") {
		opts = append(opts, compare.WithFoldCase())
	}

	if cmd.Bool("natural") {
		opts = append(opts, compare.WithNaturalStrings())
	}

	return opts, nil
}

func (a *App) compareCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "compare",
		Usage:     "Order two values, printing -1, 0 or 1",
		ArgsUsage: "A B",
		Flags:     orderingFlags(),
		Action: a.action(func(ctx context.Context, cmd *ucli.Command) error {
			values, err := parseArgs(cmd, 2)
			if err != nil {
				return err
			}

			opts, err := compareOptions(ctx, cmd)
			if err != nil {
				return err
			}

			return a.println(cmd, compare.Compare(values[0], values[1], opts...))
		}),
	}
}

func (a *App) sortCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "sort",
		Usage:     "Sort the elements of a list, printing it back as YAML flow",
		ArgsUsage: "LIST",
		Flags: append(orderingFlags(), &ucli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "sort in descending order",
		}),
		Action: a.action(func(ctx context.Context, cmd *ucli.Command) error {
			values, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			list, ok := values[0].([]any)
			if !ok {
				return fmt.Errorf("%w: sort needs a list, got %T", errors.ErrWrongType, values[0])
			}

			opts, err := compareOptions(ctx, cmd)
			if err != nil {
				return err
			}

			sign := 1
			if cmd.Bool("reverse") {
				sign = -1
			}

			slices.SortStableFunc(list, func(x, y any) int {
				return sign * compare.Compare(x, y, opts...)
			})

			return a.println(cmd, objects.ArrayString(list))
		}),
	}
}

func (a *App) equalCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "equal",
		Usage:     "Report whether two values are equal",
		ArgsUsage: "A B",
		Flags: []ucli.Flag{
			epsilonFlag(),
			foldFlag(),
			&ucli.BoolFlag{
				Name:  "value",
				Usage: "compare numbers across types and lists against arrays (implied by a non-zero epsilon)",
			},
		},
		Action: a.action(func(ctx context.Context, cmd *ucli.Command) error {
			values, err := parseArgs(cmd, 2)
			if err != nil {
				return err
			}

			eps, err := epsilon(ctx, cmd)
			if err != nil {
				return err
			}

			byValue := cmd.Bool("value") || eps > 0

			switch {
			case byValue && cmd.Bool("fold"):
				return fmt.Errorf("%w: --fold cannot be combined with value equality", errors.ErrBadArgument)
			case byValue:
				return a.println(cmd, equality.ValueEqual(values[0], values[1], eps))
			case cmd.Bool("fold"):
				return a.println(cmd, equality.EqualFold(values[0], values[1]))
			default:
				return a.println(cmd, equality.Equal(values[0], values[1]))
			}
		}),
	}
}

func quoteFlags() []ucli.Flag {
	return []ucli.Flag{
		&ucli.StringFlag{
			Name:  "escape",
			Usage: "escape character",
			Value: string(strutil.DefaultEscape),
		},
		&ucli.StringFlag{
			Name:  "open",
			Usage: "opening quote",
			Value: string(strutil.DefaultQuote),
		},
		&ucli.StringFlag{
			Name:  "close",
			Usage: "closing quote",
			Value: string(strutil.DefaultQuote),
		},
	}
}

func quoteRunes(cmd *ucli.Command) (escape, open, closing rune, err error) {
	var errs errors.Collection

	escape, err = runeFlag(cmd, "escape")
	errs.Add(err)

	open, err = runeFlag(cmd, "open")
	errs.Add(err)

	closing, err = runeFlag(cmd, "close")
	errs.Add(err)

	return escape, open, closing, errs.GetError()
}

func (a *App) quoteCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "quote",
		Usage:     "Wrap a string in quotes, escaping the closing quote and the escape character",
		ArgsUsage: "STRING",
		Flags:     quoteFlags(),
		Action: a.action(func(_ context.Context, cmd *ucli.Command) error {
			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}

			escape, open, closing, err := quoteRunes(cmd)
			if err != nil {
				return err
			}

			return a.println(cmd, strutil.QuoteWith(args[0], escape, open, closing))
		}),
	}
}

func (a *App) unquoteCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "unquote",
		Usage:     "Strip quotes added by quote and undo its escaping",
		ArgsUsage: "STRING",
		Flags:     quoteFlags(),
		Action: a.action(func(_ context.Context, cmd *ucli.Command) error {
			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}

			escape, open, closing, err := quoteRunes(cmd)
			if err != nil {
				return err
			}

			s, err := strutil.UnquoteWith(args[0], escape, open, closing)
			if err != nil {
				return err
			}

			return a.println(cmd, s)
		}),
	}
}

// boolFormats renders a nullable bool; nil always renders as "null".
var boolFormats = map[string][2]string{ //nolint:gochecknoglobals
	"truefalse": {"true", "false"},
	"onoff":     {"on", "off"},
	"yesno":     {"yes", "no"},
	"int":       {"1", "0"},
}

func (a *App) boolCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "bool",
		Usage:     "Interpret a value as a boolean",
		ArgsUsage: "VALUE",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: truefalse, onoff, yesno or int",
				Value:   "truefalse",
			},
		},
		Action: a.action(func(_ context.Context, cmd *ucli.Command) error {
			format, ok := boolFormats[cmd.String("format")]
			if !ok {
				return fmt.Errorf("%w: unknown format %q", errors.ErrBadArgument, cmd.String("format"))
			}

			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}

			// Strings go straight to booleans.Parse so that "on" and "no"
			// keep their meaning regardless of YAML.
			b, err := booleans.Parse(args[0])
			if err != nil {
				value, parseErr := ParseValue(args[0])
				if parseErr != nil {
					return parseErr
				}

				b, err = booleans.FromAny(value)
				if err != nil {
					return err
				}
			}

			return a.println(cmd, booleans.ToString(b, format[0], format[1], "null"))
		}),
	}
}

func (a *App) showCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "show",
		Usage:     "Render a value, expanding nested lists",
		ArgsUsage: "VALUE",
		Action: a.action(func(_ context.Context, cmd *ucli.Command) error {
			values, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			return a.println(cmd, objects.ArrayString(values[0]))
		}),
	}
}

func (a *App) identityCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "identity",
		Usage:     "Print the identity string of a value",
		ArgsUsage: "VALUE",
		Flags: []ucli.Flag{
			&ucli.BoolFlag{
				Name:  "hash",
				Usage: "print only the identity hash",
			},
		},
		Action: a.action(func(_ context.Context, cmd *ucli.Command) error {
			values, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			if cmd.Bool("hash") {
				return a.println(cmd, objects.IdentityHash(values[0]))
			}

			return a.println(cmd, objects.IdentityString(values[0]))
		}),
	}
}
