package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger is the fallback JSON logger for environments that do not
// wire the request-logging middleware, such as the e2e harness.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "salones-api")
}
