package components

import (
	"salones-api/internal/infra/db"
	"salones-api/internal/infra/readstore"
	"salones-api/internal/infra/uow"
	"salones-api/internal/usecase/auth"
	"salones-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQuerier,
		// Write side runs inside the unit of work; reads outside of it
		// go straight to the pool.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewReservaReadStore,
			fx.As(new(queries.ReservaReadStore)),
		),
		fx.Annotate(
			readstore.NewUsuarioReadStore,
			fx.As(new(auth.UsuarioReader)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) db.Querier {
	return pool
}
