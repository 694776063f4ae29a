package envutil

import (
	"errors"
)

// errUnsetValue, returned from a Map function, turns the result into a
// missing value instead of an error.
var errUnsetValue = errors.New("unset value")
