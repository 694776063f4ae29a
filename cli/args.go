package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/commons/errors"
	"github.com/amp-labs/commons/logger"
	ucli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ParseValue decodes a command line argument as YAML, so JSON works too.
// Integers become int, other numbers float64, sequences []any and
// mappings map[string]any. "null" and "~" give nil. A blank argument is
// kept as the string itself.
func ParseValue(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return raw, nil
	}

	var value any

	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errors.ErrBadArgument, raw, err)
	}

	return value, nil
}

// parseArgs requires exactly want positional arguments and decodes each
// with ParseValue. Every bad argument is reported, not just the first.
func parseArgs(cmd *ucli.Command, want int) ([]any, error) {
	args, err := exactArgs(cmd, want)
	if err != nil {
		return nil, err
	}

	var errs errors.Collection

	values := make([]any, len(args))

	for i, raw := range args {
		value, err := ParseValue(raw)
		if err != nil {
			errs.Add(logger.AnnotateError(err, "arg", i))

			continue
		}

		values[i] = value
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return values, nil
}

func exactArgs(cmd *ucli.Command, want int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			errors.ErrBadArgument, cmd.Name, want, len(args))
	}

	return args, nil
}

// runeFlag reads a string flag that must hold exactly one character.
func runeFlag(cmd *ucli.Command, name string) (rune, error) {
	val := cmd.String(name)
	if utf8.RuneCountInString(val) != 1 {
		return 0, fmt.Errorf("%w: --%s must be a single character, got %q",
			errors.ErrWrongType, name, val)
	}

	r, _ := utf8.DecodeRuneInString(val)

	return r, nil
}
