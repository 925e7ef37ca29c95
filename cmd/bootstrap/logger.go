package bootstrap

import (
	"log/slog"

	"studiobooking/internal/handler/middleware"
	"studiobooking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)
