package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// TransactionRepository implements usecase.TransactionRepository on
// Postgres. The table is append-only; insertion order is preserved by a
// bigserial column.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	metrics dbMetrics
}

// NewTransactionRepository creates a new TransactionRepository. m may be nil.
func NewTransactionRepository(pool *pgxpool.Pool, m *metrics.Metrics) *TransactionRepository {
	return &TransactionRepository{pool: pool, metrics: dbMetrics{m: m}}
}

const transactionColumns = `
	id, ledger_date, time_of_day, agent_id, area, tx_type,
	debit, credit, description, is_manual, manual_sequence, created_at
`

// Append inserts a transaction. There is no update or delete path.
func (r *TransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, ledger_date, time_of_day, agent_id, area, tx_type,
			debit, credit, description, is_manual, manual_sequence, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	start := time.Now()
	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		domain.Day(tx.Date),
		tx.TimeOfDay,
		tx.AgentID,
		tx.Area,
		string(tx.Type),
		tx.Debit,
		tx.Credit,
		tx.Description,
		tx.IsManual,
		tx.ManualSequence,
		tx.CreatedAt,
	)
	r.metrics.observe("transaction_append", start, err)

	return err
}

// List retrieves transactions in insertion order.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY insertion_seq
		LIMIT $1 OFFSET $2
	`

	start := time.Now()
	rows, err := r.pool.Query(ctx, query, limit, offset)
	r.metrics.observe("transaction_list", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByDateRange retrieves transactions whose ledger date falls in the
// inclusive range, in insertion order.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ledger_date BETWEEN $1 AND $2
		ORDER BY insertion_seq
	`

	start := time.Now()
	rows, err := r.pool.Query(ctx, query, domain.Day(from), domain.Day(to))
	r.metrics.observe("transaction_list_range", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// NextManualSequence draws the next value from a dedicated sequence, so
// concurrent manual entries are serialized and values are never reused.
func (r *TransactionRepository) NextManualSequence(ctx context.Context) (int64, error) {
	var seq int64

	start := time.Now()
	err := r.pool.QueryRow(ctx, `SELECT nextval('manual_entry_seq')`).Scan(&seq)
	r.metrics.observe("manual_sequence_next", start, err)

	return seq, err
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction

	for rows.Next() {
		var (
			tx     domain.Transaction
			txType string
		)
		err := rows.Scan(
			&tx.ID,
			&tx.Date,
			&tx.TimeOfDay,
			&tx.AgentID,
			&tx.Area,
			&txType,
			&tx.Debit,
			&tx.Credit,
			&tx.Description,
			&tx.IsManual,
			&tx.ManualSequence,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.Type = domain.TransactionType(txType)
		tx.Date = domain.Day(tx.Date)
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
