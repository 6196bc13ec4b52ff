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

	"cuponera/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestAccount(t *testing.T, db DBLike, email, plainPassword, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO accounts (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		accountID, email, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

func CreateTestMerchant(t *testing.T, db DBLike, code, name string) uuid.UUID {
	t.Helper()

	merchantID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO merchants (id, code, name, email) VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING",
		merchantID, code, name, strings.ToLower(code)+"@example.com")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM merchants WHERE code = $1", code).Scan(&merchantID)
	}

	return merchantID
}

func CreateTestCustomer(t *testing.T, db DBLike, email string) (customerID, accountID uuid.UUID) {
	t.Helper()

	customerID = uuid.New()
	accountID = uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, account_id, first_name, last_name, email) VALUES ($1, $2, 'Ana', 'Lopez', $3) ON CONFLICT (email) DO NOTHING",
		customerID, accountID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id, account_id FROM customers WHERE email = $1", email).Scan(&customerID, &accountID)
	}

	return customerID, accountID
}

// CreateTestCustomerForAccount links the customer row to an existing account.
func CreateTestCustomerForAccount(t *testing.T, db DBLike, email string, accountID uuid.UUID) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO customers (id, account_id, first_name, last_name, email) VALUES ($1, $2, 'Ana', 'Lopez', $3)",
		customerID, accountID, email)
	require.NoError(t, err)

	return customerID
}

type TestOfferParams struct {
	MerchantID    uuid.UUID
	CategoryID    *uuid.UUID
	Title         string
	RegularPrice  float64
	DiscountPrice float64
	StartsOn      *time.Time
	EndsOn        *time.Time
	RedeemBy      *time.Time
	StockLimit    *int32
	ApprovalState string
}

func CreateTestOffer(t *testing.T, db DBLike, p TestOfferParams) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	ctx := context.Background()

	if p.Title == "" {
		p.Title = "Test Offer"
	}
	if p.RegularPrice == 0 {
		p.RegularPrice = 20.00
	}
	if p.DiscountPrice == 0 {
		p.DiscountPrice = 10.00
	}
	if p.ApprovalState == "" {
		p.ApprovalState = "approved"
	}

	_, err := db.Exec(ctx, `
		INSERT INTO offers (id, merchant_id, category_id, title, description,
		                    regular_price, discount_price, starts_on, ends_on, redeem_by,
		                    stock_limit, approval_state)
		VALUES ($1, $2, $3, $4, '', $5, $6, $7, $8, $9, $10, $11)`,
		offerID, p.MerchantID, p.CategoryID, p.Title,
		p.RegularPrice, p.DiscountPrice, p.StartsOn, p.EndsOn, p.RedeemBy,
		p.StockLimit, p.ApprovalState)
	require.NoError(t, err)

	return offerID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name) VALUES
		    (gen_random_uuid(), 'Restaurants'),
		    (gen_random_uuid(), 'Beauty')
		ON CONFLICT (name) DO NOTHING;
	`)
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
