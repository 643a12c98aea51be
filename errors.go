package guide

import (
	"errors"
	"fmt"
)

var (
	// ErrExclusive is reported if a fixed style and a mapper are both
	// configured for the same visual element.
	ErrExclusive = errors.New("fixed style and mapper are mutually exclusive")

	// ErrPosition is reported for axis positions outside [0,1].
	ErrPosition = errors.New("position must lie in [0,1]")

	// ErrTickLength is reported for tick lines with a negative length.
	ErrTickLength = errors.New("tick line length must not be negative")

	// ErrMissingScale is matched by every *MissingScaleError.
	ErrMissingScale = errors.New("missing scale")

	// ErrNoVariable is reported if an axis has no variable and none is
	// bound to its dimension.
	ErrNoVariable = errors.New("no variable bound to dimension")
)

// ConfigError describes an invalid axis configuration.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("guide: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// MissingScaleError is returned when the scale of a variable cannot be
// found in the scale table.
type MissingScaleError struct {
	Variable string
}

func (e *MissingScaleError) Error() string {
	return fmt.Sprintf("guide: no scale for variable %q", e.Variable)
}

// Is makes errors.Is(err, ErrMissingScale) succeed.
func (e *MissingScaleError) Is(target error) bool { return target == ErrMissingScale }
