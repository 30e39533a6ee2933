package bootstrap

import (
	"context"
	"log/slog"

	"solar-dispatch/internal/infra/db"
	"solar-dispatch/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(newPool),
)

// newPool connects eagerly so a bad DSN fails the app before the HTTP server
// and the cleanup job start.
func newPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		slog.Info("closing database pool",
			slog.Int("acquired", int(stat.AcquiredConns())),
			slog.Int("idle", int(stat.IdleConns())))
		closePool()
	}))
	return pool, nil
}
