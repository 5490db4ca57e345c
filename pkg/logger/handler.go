package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
	"unicode"
)

type HandlerOptions struct {
	// Name of the program, as rendered on every line.
	Identity Identity
	// Clock used to render the timestamp. Defaults to a monotonic clock
	// started when the handler is created.
	Clock Clock
	// Minimum level to emit. Defaults to LevelInfo.
	Level slog.Leveler
	// Colors for the program name and level labels. Defaults to an uncolored
	// palette.
	Palette *Palette
	// Time source for records that carry no timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Handler is a slog.Handler that writes each record as a single line:
//
//	[<time>] <name>: <LEVEL>: <message> [key=value ...]
//
// Every field of a Handler is fixed at construction, so it may be used from
// any number of goroutines. Each record results in exactly one Write call on
// the output; serializing concurrent writes is left to the writer.
type Handler struct {
	out     io.Writer
	name    string
	clock   Clock
	level   slog.Leveler
	palette *Palette
	now     func() time.Time

	attrs  []byte // preformatted attributes from WithAttrs
	prefix string // open groups, joined with "."
}

var _ slog.Handler = (*Handler)(nil)

func NewHandler(out io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		out:     out,
		clock:   opts.Clock,
		level:   opts.Level,
		palette: opts.Palette,
		now:     opts.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.clock == nil {
		h.clock = NewMonotonicClock(h.now())
	}
	if h.level == nil {
		h.level = LevelInfo
	}
	if h.palette == nil {
		h.palette = NewPalette(false)
	}
	h.name = h.palette.Name(opts.Identity)
	return h
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	floor := h.level.Level()
	if floor >= LevelOff {
		return false
	}
	return level >= floor
}

// Handle implements slog.Handler. A write error is returned as-is.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	now := r.Time
	if now.IsZero() {
		now = h.now()
	}

	bufp := bufPool.Get().(*[]byte)
	defer func() {
		*bufp = (*bufp)[:0]
		bufPool.Put(bufp)
	}()

	attrs := h.attrs
	if r.NumAttrs() > 0 {
		attrs = append(make([]byte, 0, len(h.attrs)+64), h.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			attrs = appendAttr(attrs, h.prefix, a)
			return true
		})
	}

	*bufp = appendLine(*bufp, h.clock.Render(now), h.name, h.palette.Label(r.Level), r.Message, attrs)
	_, err := h.out.Write(*bufp)
	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, h2.prefix, a)
	}
	return h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.prefix += name + "."
	return h2
}

func (h *Handler) Palette() *Palette {
	return h.palette
}

func (h *Handler) clone() *Handler {
	h2 := *h
	h2.attrs = append([]byte(nil), h.attrs...)
	return &h2
}

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	s := a.Value.String()
	if needsQuoting(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == '=' || r == '"' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
