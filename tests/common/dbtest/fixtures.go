//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash is the bcrypt hash of TestPassword (cost 12).
const (
	TestPassword     = "password123"
	TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	displayName, _, _ := strings.Cut(email, "@")
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, display_name, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role, displayName)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CustomerRow is a customers row for fixtures. Nil pointers stay NULL.
type CustomerRow struct {
	Name                    string
	Phone                   string
	Address                 string
	Salesman                string
	SquareSteelOutboundDate *string
	SquareSteelInboundDate  *string
	ComponentOutboundDate   *string
	InverterOutboundDate    *string
	ConstructionTeam        *string
}

func CreateTestCustomer(t *testing.T, db DBLike, row CustomerRow) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if row.Name == "" {
		row.Name = "客户" + id.String()[:4]
	}
	if row.Phone == "" {
		row.Phone = "13800000000"
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO customers (id, name, phone, address, salesman,
			square_steel_outbound_date, square_steel_inbound_date, component_outbound_date,
			inverter_outbound_date, construction_team)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, row.Name, row.Phone, row.Address, row.Salesman,
		row.SquareSteelOutboundDate, row.SquareSteelInboundDate, row.ComponentOutboundDate,
		row.InverterOutboundDate, row.ConstructionTeam)
	require.NoError(t, err)

	return id
}

// CreateTestCode inserts an unused code issued at createdAt with a 24h lifetime.
func CreateTestCode(t *testing.T, db DBLike, code string, issuedBy uuid.UUID, blocked []string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if blocked == nil {
		blocked = []string{}
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO verification_codes (id, code, issued_by, blocked_salesmen, created_at, expires_at, used)
		VALUES ($1, $2, $3, $4, $5, $6, false)`,
		id, code, issuedBy, blocked, createdAt, createdAt.Add(24*time.Hour))
	require.NoError(t, err)

	return id
}

// SeedReferenceData inserts the bootstrap administrator.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, display_name, is_active) VALUES
		    (gen_random_uuid(), 'admin@example.com', $1, 'admin', 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`, TestPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
