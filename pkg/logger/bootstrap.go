package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// BootstrapLevel controls the bootstrap logger's filter. The CLI sets it
// from --log-level.
var BootstrapLevel slog.LevelVar

// Bootstrap returns a logger for reporting problems that occur before a
// Logger exists, such as an initialization failure. Colors are used only
// when w is a terminal and NO_COLOR is unset.
func Bootstrap(w io.Writer) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      &BootstrapLevel,
		TimeFormat: "2006 Jan 02 15:04:05",
		NoColor:    noColor,
	}))
}
