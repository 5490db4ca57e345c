package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// LookupFunc reads an environment-style configuration key. It has the same
// contract as os.LookupEnv.
type LookupFunc func(key string) (string, bool)

const (
	DefaultLevelKey  = "LOGLEVEL"
	DefaultOffsetKey = "LOGTZ"
	DefaultStyleKey  = "LOGSTYLE"
)

// DefaultLevel applies when the level key is unset.
const DefaultLevel = LevelError

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("%w %q (expected auto, always, or never)", ErrInvalidStyle, s)
	}
}

// Config controls how a Logger is built. The zero value is usable and reads
// everything from the process: os.Args, the environment, and os.Stderr.
type Config struct {
	// Argument vector used to resolve the program name. Defaults to os.Args.
	Args []string
	// Timestamp strategy.
	Clock ClockKind
	// Destination of rendered lines. Defaults to os.Stderr.
	Output io.Writer
	// Whether to emit ANSI colors. A value under StyleKey overrides it.
	Color ColorMode
	// Level filter. If nil, the filter is read from LevelKey.
	Level *slog.Level

	Lookup    LookupFunc
	LevelKey  string
	OffsetKey string
	StyleKey  string

	// Time source, also used to capture the monotonic reference instant.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Args == nil {
		c.Args = os.Args
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
	if c.Lookup == nil {
		c.Lookup = os.LookupEnv
	}
	if c.LevelKey == "" {
		c.LevelKey = DefaultLevelKey
	}
	if c.OffsetKey == "" {
		c.OffsetKey = DefaultOffsetKey
	}
	if c.StyleKey == "" {
		c.StyleKey = DefaultStyleKey
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

func (c Config) clock() (Clock, error) {
	switch c.Clock {
	case ClockMonotonic:
		return NewMonotonicClock(c.Now()), nil
	case ClockCalendar:
		return NewCalendarClock(c.Lookup, c.OffsetKey)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidClock, c.Clock)
	}
}

func (c Config) level() (slog.Level, error) {
	if c.Level != nil {
		return *c.Level, nil
	}
	value, ok := c.Lookup(c.LevelKey)
	if !ok || value == "" {
		return DefaultLevel, nil
	}
	level, err := ParseLevel(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.LevelKey, err)
	}
	return level, nil
}

func (c Config) colorEnabled() (bool, error) {
	mode := c.Color
	if value, ok := c.Lookup(c.StyleKey); ok && value != "" {
		var err error
		if mode, err = ParseColorMode(value); err != nil {
			return false, fmt.Errorf("%s: %w", c.StyleKey, err)
		}
	}
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	}
	if _, ok := c.Lookup("NO_COLOR"); ok {
		return false, nil
	}
	f, ok := c.Output.(interface{ Fd() uintptr })
	if !ok {
		return false, nil
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
}
