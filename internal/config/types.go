// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDefaultAlias is returned when the default alias is whitespace-only.
	ErrInvalidDefaultAlias = errors.New("invalid default alias")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UIConfig holds UI-related settings.
	UIConfig struct {
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		// DefaultAlias is the runtime alias used when global.json expresses
		// no version preference.
		DefaultAlias string `mapstructure:"default_alias"`
		// UI holds UI-related settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error returns the error message for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() bool {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	default:
		return false
	}
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultAlias: "default",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate checks constraints that the CUE schema cannot express once the
// configuration has passed through Viper (which erases schema context for
// defaulted values).
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DefaultAlias) == "" {
		return fmt.Errorf("%w: default_alias must not be blank", ErrInvalidDefaultAlias)
	}
	if !c.UI.ColorScheme.IsValid() {
		return &InvalidColorSchemeError{Value: c.UI.ColorScheme}
	}
	return nil
}
