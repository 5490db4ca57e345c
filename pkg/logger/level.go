package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Severities on the slog scale. LevelTrace extends slog below Debug.
const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// LevelOff is above every severity; a filter set to it drops all records.
const LevelOff = slog.Level(1 << 16)

// Levels lists the named severities from most to least urgent.
var Levels = []slog.Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// severity buckets an arbitrary slog level down to the nearest named one.
func severity(l slog.Level) slog.Level {
	switch {
	case l >= LevelError:
		return LevelError
	case l >= LevelWarn:
		return LevelWarn
	case l >= LevelInfo:
		return LevelInfo
	case l >= LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

func LevelName(l slog.Level) string {
	switch severity(l) {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

// ParseLevel parses a level filter. It accepts the five severity names in
// any case, "off", and slog-style offsets such as "info+2" or "debug-1".
func ParseLevel(s string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "off":
		return LevelOff, nil
	case "trace":
		return LevelTrace, nil
	}
	if base, offset, ok := strings.Cut(name, "+"); ok && base == "trace" {
		return parseTraceOffset(s, offset, 1)
	}
	if base, offset, ok := strings.Cut(name, "-"); ok && base == "trace" {
		return parseTraceOffset(s, offset, -1)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidLevel, s, err)
	}
	return level, nil
}

func parseTraceOffset(s, offset string, sign int) (slog.Level, error) {
	n, err := strconv.Atoi(offset)
	if err != nil || strings.ContainsAny(offset, "+-") {
		return 0, fmt.Errorf("%w %q", ErrInvalidLevel, s)
	}
	return LevelTrace + slog.Level(sign*n), nil
}

// Palette holds the rendered label of every severity, and the decoration
// applied to the program name.
type Palette struct {
	labels [5]string
	name   text.Colors
	color  bool
}

var levelColors = map[slog.Level]text.Colors{
	LevelError: {text.FgRed},
	LevelWarn:  {text.FgYellow},
	LevelInfo:  {text.FgGreen},
	LevelDebug: {text.FgHiBlue},
	LevelTrace: {text.FgMagenta},
}

func NewPalette(color bool) *Palette {
	p := &Palette{
		name:  text.Colors{text.Bold},
		color: color,
	}
	for i, l := range Levels {
		p.labels[i] = p.paint(levelColors[l], LevelName(l))
	}
	return p
}

// Label returns the rendered label for the given level.
func (p *Palette) Label(l slog.Level) string {
	switch severity(l) {
	case LevelError:
		return p.labels[0]
	case LevelWarn:
		return p.labels[1]
	case LevelInfo:
		return p.labels[2]
	case LevelDebug:
		return p.labels[3]
	default:
		return p.labels[4]
	}
}

// Name returns the program name decorated for display.
func (p *Palette) Name(id Identity) string {
	return p.paint(p.name, id.String())
}

func (p *Palette) paint(colors text.Colors, s string) string {
	if !p.color {
		return s
	}
	return colors.EscapeSeq() + s + text.EscapeReset
}
