package components

import (
	"solar-dispatch/internal/infra/cache"
	"solar-dispatch/internal/infra/readstore"
	"solar-dispatch/internal/infra/uow"
	"solar-dispatch/internal/usecase/queries"
	"solar-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Verification code
		fx.Annotate(
			readstore.NewVerificationCodeReadStore,
			fx.As(new(queries.VerificationCodeReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork; repositories are created per transaction
		uow.NewPostgresUoW,
		// Customer cache shared by draws and the warehouse dashboard
		fx.Annotate(
			cache.NewCustomerCache,
			fx.As(new(shared.CustomerCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}
