package nutrition

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks inputs a pure computation refuses to work with.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return invalidf("%s must be >= 0", name)
	}
	return nil
}
