package longshadow

import (
	"errors"
	"fmt"
)

// Sentinel errors for longshadow.
var (
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("longshadow: invalid renderer configuration")

	// ErrInvalidOption is wrapped by every OptionError.
	ErrInvalidOption = errors.New("longshadow: invalid render option")
)

// ConfigError is returned by NewRenderer when the renderer dimensions or
// mask scale are unusable. No surfaces are allocated when it is returned.
type ConfigError struct {
	Field  string  // "width", "height" or "mask scale"
	Value  float64 // offending value
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("longshadow: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// OptionError is returned by Render when a per-call argument is unusable,
// before any surface is touched. Painters built with TextShape also return
// it for a missing font or a bad size.
type OptionError struct {
	Option string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("longshadow: invalid %s: %s", e.Option, e.Reason)
}

// Unwrap returns ErrInvalidOption.
func (e *OptionError) Unwrap() error { return ErrInvalidOption }
