package components

import (
	"cuponera/internal/infra/db"
	"cuponera/internal/infra/readstore"
	"cuponera/internal/infra/repository"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			db.NewPgxTxRunner,
			fx.As(new(commands.TxRunner)),
		),
		// Write side
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(commands.PurchaseLedger)),
		),
		// Read side
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
