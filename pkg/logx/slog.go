package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

type Options struct {
	AppName    string
	AppVersion string
	AppEnv     string
	Level      slog.Level
}

// New builds the process logger: colored tint output for local development,
// JSON everywhere else.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.AppEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})

		return slog.New(h).With(slog.String(FieldAppName, opts.AppName))
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return slog.New(h).With(
		slog.String(FieldAppName, opts.AppName),
		slog.String(FieldAppVersion, opts.AppVersion),
		slog.String(FieldAppEnv, opts.AppEnv),
	)
}
