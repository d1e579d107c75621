package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// OpeningBalanceRepository implements usecase.OpeningBalanceRepository.
// The seed table is owned by an upstream process; the engine only reads it.
type OpeningBalanceRepository struct {
	pool    *pgxpool.Pool
	metrics dbMetrics
}

// NewOpeningBalanceRepository creates a new OpeningBalanceRepository. m may
// be nil.
func NewOpeningBalanceRepository(pool *pgxpool.Pool, m *metrics.Metrics) *OpeningBalanceRepository {
	return &OpeningBalanceRepository{pool: pool, metrics: dbMetrics{m: m}}
}

// OpeningBalance returns the seeded balance for (date, agent), reporting
// absence rather than defaulting; the calculator decides the fallback.
func (r *OpeningBalanceRepository) OpeningBalance(ctx context.Context, date time.Time, agentID string) (decimal.Decimal, bool, error) {
	var amount decimal.Decimal

	query := `SELECT amount FROM opening_balances WHERE ledger_date = $1 AND agent_id = $2`

	start := time.Now()
	err := r.pool.QueryRow(ctx, query, domain.Day(date), agentID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		r.metrics.observe("opening_balance_get", start, nil)
		return decimal.Zero, false, nil
	}
	r.metrics.observe("opening_balance_get", start, err)
	if err != nil {
		return decimal.Zero, false, err
	}

	return amount, true, nil
}
