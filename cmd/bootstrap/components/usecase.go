package components

import (
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/usecase"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIntakeCommands,
		commands.NewLifecycleCommands,
		commands.NewWalletCommands,
		commands.NewAgentAdminCommands,
		commands.NewInventoryAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewAgentQueries,
		queries.NewWalletQueries,
		queries.NewInventoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
