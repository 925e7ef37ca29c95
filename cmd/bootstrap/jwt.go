package bootstrap

import (
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/jwt"
	"studiobooking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(commands.SessionTokenIssuer)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.Duration)
}
