// Package logger настраивает slog для сервиса.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Setup создаёт логгер для окружения env. Если logFile задан, записи
// дописываются в него в дополнение к stdout. Возвращаемая функция закрывает файл.
func Setup(env, logFile string) (*slog.Logger, func() error, error) {
	return setup(os.Stdout, env, logFile)
}

func setup(stdout io.Writer, env, logFile string) (*slog.Logger, func() error, error) {
	out := stdout
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(stdout, f)
		closeFn = f.Close
	}

	var handler slog.Handler
	switch env {
	case EnvLocal:
		handler = tint.NewHandler(out, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.DateTime,
			NoColor:    logFile != "" || !isTerminal(stdout),
		})
	case EnvDev:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return slog.New(handler), closeFn, nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
