package components

import (
	"bluehaven/internal/handler"
	"bluehaven/internal/handler/api"
	"bluehaven/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewPaymentHandler,
		api.NewGuestHandler,
		api.NewAdminHandler,
		api.NewReviewHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
