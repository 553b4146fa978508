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

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx, so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateFundedWallet credits userID with amount through a funding ledger entry, like a real top-up.
func CreateFundedWallet(t *testing.T, db DBLike, userID uuid.UUID, amount money.Money) {
	t.Helper()

	ctx := context.Background()
	now := time.Now()
	_, err := db.Exec(ctx, `
		INSERT INTO wallets (user_id, balance_kobo, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET balance_kobo = wallets.balance_kobo + EXCLUDED.balance_kobo, updated_at = EXCLUDED.updated_at`,
		userID, amount.Kobo(), now)
	require.NoError(t, err)

	var balance int64
	require.NoError(t, db.QueryRow(ctx, "SELECT balance_kobo FROM wallets WHERE user_id = $1", userID).Scan(&balance))

	_, err = db.Exec(ctx, `
		INSERT INTO ledger_entries (id, user_id, amount_kobo, idempotency_key, kind, balance_after_kobo, created_at)
		VALUES ($1, $2, $3, $4, 'funding', $5, $6)`,
		uuid.New(), userID, amount.Kobo(), "fixture:"+uuid.NewString(), balance, now)
	require.NoError(t, err)
}

func WalletBalance(t *testing.T, db DBLike, userID uuid.UUID) money.Money {
	t.Helper()

	var kobo int64
	err := db.QueryRow(context.Background(), "SELECT balance_kobo FROM wallets WHERE user_id = $1", userID).Scan(&kobo)
	require.NoError(t, err)
	return money.FromKobo(kobo)
}

func CreateAgent(t *testing.T, db DBLike, name string, maxActive int, cats ...category.Category) uuid.UUID {
	t.Helper()

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	id := uuid.New()
	now := time.Now()
	_, err := db.Exec(context.Background(), `
		INSERT INTO agents (id, display_name, categories, max_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		id, name, names, maxActive, now)
	require.NoError(t, err)
	return id
}

func CreateCodes(t *testing.T, db DBLike, pool string, codes ...string) {
	t.Helper()

	now := time.Now()
	for i, code := range codes {
		_, err := db.Exec(context.Background(), `
			INSERT INTO inventory_codes (id, pool, code, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New(), pool, code, now.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, err)
	}
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM service_requests WHERE id = $1", requestID).Scan(&status)
	require.NoError(t, err)
	return status
}

// SeedReferenceData inserts the built-in catalog's default fees.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	now := time.Now()

	for _, seed := range catalog.Default().DefaultPrices() {
		_, err := pool.Exec(ctx, `
			INSERT INTO pricing (category, variant, fee_kobo, updated_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (category, variant) DO NOTHING`,
			seed.Category.String(), seed.Variant, seed.Fee.Kobo(), now)
		if err != nil {
			return err
		}
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
