package components

import (
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	notify.NewContextSink,
	func(cfg config.Config) *dispatch.Engine {
		return dispatch.NewEngine(nil, cfg.Dispatch.RevealTicks)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVerificationCommands,
		commands.NewDispatchCommands,
		commands.NewMaterialCommands,
		commands.NewBlocklistCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVerificationCodeQueries,
		queries.NewDispatchQueries,
		queries.NewWarehouseQueries,
	),
)
