package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
)

// TransactionRepository defines data access for the append-only ledger.
// There is no update or delete; corrections are appended as new entries.
type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error)
	// NextManualSequence returns a process-wide monotonically increasing
	// counter for manual entries. Values are never reused.
	NextManualSequence(ctx context.Context) (int64, error)
}

// AgentDirectory resolves scope selections against reference data.
// Collectors are expanded to the tellers under their areas and are never
// part of a resulting scope themselves.
type AgentDirectory interface {
	AllAgents(ctx context.Context) ([]*domain.Agent, error)
	AgentByID(ctx context.Context, id string) (*domain.Agent, error)
	AgentsInArea(ctx context.Context, areaID string) ([]*domain.Agent, error)
	AgentsUnderCollector(ctx context.Context, collectorID string) ([]*domain.Agent, error)
}

// OpeningBalanceRepository is the seed table keyed by (date, agent). The
// engine reads it only for an agent's first processed bucket in a report.
type OpeningBalanceRepository interface {
	OpeningBalance(ctx context.Context, date time.Time, agentID string) (decimal.Decimal, bool, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
