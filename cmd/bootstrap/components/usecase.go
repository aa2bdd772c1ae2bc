package components

import (
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/pkg/config"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.PublicConfig {
		return cfg.Public
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewHotelCommands,
		commands.NewRoomCommands,
		commands.NewRateCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewIntegrationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewPaymentQueries,
		queries.NewDashboardQueries,
		queries.NewReportQueries,
		queries.NewIntegrationQueries,
		queries.NewPublicQueries,
	),
)
