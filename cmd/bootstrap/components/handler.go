package components

import (
	"cuponera/internal/handler"
	"cuponera/internal/handler/api"
	"cuponera/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewPurchaseHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
