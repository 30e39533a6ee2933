package components

import (
	"solar-dispatch/internal/handler"
	"solar-dispatch/internal/handler/api"
	"solar-dispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDispatchHandler,
		api.NewWarehouseHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
