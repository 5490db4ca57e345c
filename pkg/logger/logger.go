package logger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Logger is the handle returned by New and Init. It embeds the slog.Logger
// that emission sites use, and owns the level filter applied to it.
type Logger struct {
	*slog.Logger

	identity Identity
	clock    Clock
	level    *slog.LevelVar
	handler  *Handler
}

// New resolves the program name, establishes the timestamp strategy, and
// builds a Logger from cfg. Nothing is registered globally. On error, no
// Logger is built.
func New(cfg Config) (*Logger, error) {
	cfg = cfg.withDefaults()

	identity, err := ResolveIdentity(cfg.Args)
	if err != nil {
		return nil, err
	}
	clock, err := cfg.clock()
	if err != nil {
		return nil, err
	}
	color, err := cfg.colorEnabled()
	if err != nil {
		return nil, err
	}
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}

	lv := new(slog.LevelVar)
	lv.Set(level)
	h := NewHandler(cfg.Output, &HandlerOptions{
		Identity: identity,
		Clock:    clock,
		Level:    lv,
		Palette:  NewPalette(color),
		Now:      cfg.Now,
	})
	return &Logger{
		Logger:   slog.New(h),
		identity: identity,
		clock:    clock,
		level:    lv,
		handler:  h,
	}, nil
}

var (
	initMu      sync.Mutex
	initialized *Logger
)

// Init builds a Logger as New does and registers it as the slog default.
// Only the first successful call registers; later calls return
// ErrAlreadyInitialized and leave the existing default untouched. A failed
// call leaves the slog default as it was and may be retried.
func Init(cfg Config) (*Logger, error) {
	initMu.Lock()
	defer initMu.Unlock()
	if initialized != nil {
		return nil, fmt.Errorf("%w as %q", ErrAlreadyInitialized, initialized.identity)
	}
	lg, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(lg.Logger)
	initialized = lg
	return lg, nil
}

func (l *Logger) Identity() Identity {
	return l.identity
}

func (l *Logger) Clock() Clock {
	return l.clock
}

func (l *Logger) LineHandler() *Handler {
	return l.handler
}

func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(msg string, args ...any) {
	l.Log(context.Background(), LevelTrace, msg, args...)
}

type loggerContextKeyType struct{}

var loggerContextKey loggerContextKeyType

func ContextWithLogger(ctx context.Context, lg *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, lg)
}

func FromContext(ctx context.Context) (*Logger, bool) {
	lg, ok := ctx.Value(loggerContextKey).(*Logger)
	return lg, ok
}
