//go:build e2e

// Package e2e boots the whole dispatch application against a throwaway
// PostgreSQL and hands suites a ready router.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"solar-dispatch/cmd/bootstrap"
	"solar-dispatch/cmd/bootstrap/components"
	"solar-dispatch/internal/infra/db"
	"solar-dispatch/internal/infra/metrics"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/usecase/shared"
	"solar-dispatch/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "dispatch"
	pgPassword = "dispatch"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce sync.Once
	pgAddr postgresAddr
	pgErr  error
)

type postgresAddr struct {
	host string
	port nat.Port
}

func (a postgresAddr) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, a.host, a.port.Port(), dbName)
}

// sharedPostgres starts one container per test binary. Ryuk reaps it when
// the process exits.
func sharedPostgres(t *testing.T) postgresAddr {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "Asia/Shanghai",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return postgresAddr{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "solar-dispatch-e2e"},
			},
			Started: true,
		})
		if err != nil {
			pgErr = errs.Wrap(err, "start postgres container")
			return
		}

		host, err := c.Host(ctx)
		if err != nil {
			pgErr = errs.Wrap(err, "container host")
			return
		}
		port, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			pgErr = errs.Wrap(err, "container port")
			return
		}
		pgAddr = postgresAddr{host: host, port: port}
	})
	require.NoError(t, pgErr)
	return pgAddr
}

// freshDatabase creates a database private to the calling suite and drops it
// on cleanup.
func freshDatabase(t *testing.T, addr postgresAddr) config.DBConfig {
	t.Helper()
	name := "dispatch_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE collides on template1 when suites start together
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
		if err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.host,
		Port:     addr.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Shanghai",
		MaxConns: 10,
	}
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// applyMigrations runs every versioned file in lexical order, the same order
// atlas applies them in.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir(), "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	if len(files) == 0 {
		return errs.Newf("no migrations under %s", migrationsDir())
	}
	slices.Sort(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return errs.Wrapf(err, "read %s", filepath.Base(f))
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return errs.Wrapf(err, "apply %s", filepath.Base(f))
		}
	}
	return nil
}

// Collectors go to a private registry so several suites can build an app in
// one process.
var testMetricsModule = fx.Module("testmetrics",
	fx.Provide(
		func() (*metrics.PromMetrics, error) {
			return metrics.NewPromMetrics(prometheus.NewRegistry())
		},
		func(m *metrics.PromMetrics) shared.Metrics { return m },
	),
)

// startApp wires the production modules around the test pool. The config
// and migration entrypoints are left out; the pool is already migrated.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		testMetricsModule,
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})

	require.NotNil(t, router, "fx app started without a router")
	return router, cfg
}

// SharedSuite gives every e2e suite its own migrated database and a router
// built from the production modules. Data is reset before each subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := freshDatabase(t, sharedPostgres(t))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(ctx, pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbCfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
