package components

import (
	"cuponera/internal/domain/coupon"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		coupon.NewRandomGenerator,
		fx.As(new(commands.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPurchaseCommands,
		commands.NewRedeemCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewCouponQueries,
		queries.NewCustomerQueries,
	),
)
