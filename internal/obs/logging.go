// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the service.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler at info level
// and installs it as the process default, so package-level slog calls emit
// the same structured output.
func InitLogger() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	Logger = slog.New(h)
	slog.SetDefault(Logger)
}
