package bootstrap

import (
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AdminDuration, cfg.JWT.GuestDuration, clk)
}
