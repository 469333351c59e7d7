// Package configuration implements the reading of program defaults from an
// optional env-format file and the resolution of the coloring policy from
// the environment.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment keys consulted for flag defaults, from the defaults file or
// the process environment (the latter wins).
const (
	EnvConfigPath  = "CLS_CONFIG"
	EnvColor       = "CLS_COLOR"
	EnvAll         = "CLS_ALL"
	EnvHuman       = "CLS_HUMAN"
	EnvNoDirCounts = "CLS_NO_DIR_COUNTS"
)

// ColorMode is the coloring policy of an invocation.
type ColorMode int

const (
	// ColorAuto colors only when a color-capable terminal is detected.
	ColorAuto ColorMode = iota

	// ColorAlways colors unconditionally.
	ColorAlways

	// ColorNever never colors.
	ColorNever
)

// ParseColorMode parses a coloring policy, accepting the usual synonyms
// case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "never", "no", "none":
		return ColorNever, nil
	case "always", "yes", "force":
		return ColorAlways, nil
	case "auto", "tty", "if-tty":
		return ColorAuto, nil
	default:
		return ColorAuto, fmt.Errorf("(config-color) %q: %w", s, ErrUnknownColorMode)
	}
}

// String implements [fmt.Stringer] for a [ColorMode].
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Enabled resolves the policy to a decision. Auto mode enables color only
// when a terminal-type environment signal (TERM) is present and the NO_COLOR
// override is absent.
func (m ColorMode) Enabled() bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		_, hasTerm := os.LookupEnv("TERM")
		_, noColor := os.LookupEnv("NO_COLOR")

		return hasTerm && !noColor
	}
}

// envProvider defines methods needed for reading env-format files.
type envProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

// Handler is the principal implementation of a configuration [Handler].
type Handler struct {
	envReader envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(envReader envProvider) *Handler {
	return &Handler{
		envReader: envReader,
	}
}

// Defaults holds the flag defaults seeded from the configuration sources.
type Defaults struct {
	Color       string
	All         bool
	Human       bool
	NoDirCounts bool
}

// LoadDefaults reads the optional defaults file ($CLS_CONFIG, else
// ~/.config/cls/config) and applies process environment overrides on top. A
// missing or unreadable file is not an error; built-in defaults apply.
func (c *Handler) LoadDefaults() Defaults {
	defaults := Defaults{Color: ColorAuto.String()}

	if envMap, err := c.envReader.Read(c.defaultsFilePath()); err == nil {
		applyDefaults(&defaults, func(key string) (string, bool) {
			value, exists := envMap[key]

			return value, exists
		})
	}

	applyDefaults(&defaults, os.LookupEnv)

	return defaults
}

func (c *Handler) defaultsFilePath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "cls", "config")
}

func applyDefaults(defaults *Defaults, lookup func(string) (string, bool)) {
	if value, exists := lookup(EnvColor); exists && value != "" {
		defaults.Color = value
	}
	if value, exists := lookup(EnvAll); exists {
		defaults.All, _ = strconv.ParseBool(value)
	}
	if value, exists := lookup(EnvHuman); exists {
		defaults.Human, _ = strconv.ParseBool(value)
	}
	if value, exists := lookup(EnvNoDirCounts); exists {
		defaults.NoDirCounts, _ = strconv.ParseBool(value)
	}
}
