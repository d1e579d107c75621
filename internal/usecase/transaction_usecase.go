package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// TransactionUseCase handles the automated append path and listing.
type TransactionUseCase struct {
	txRepo  TransactionRepository
	idGen   IDGenerator
	retrier Retrier
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewTransactionUseCase creates a new TransactionUseCase. retrier and
// metrics may be nil.
func NewTransactionUseCase(txRepo TransactionRepository, idGen IDGenerator, retrier Retrier, metrics *metrics.Metrics) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo:  txRepo,
		idGen:   idGen,
		retrier: retrier,
		metrics: metrics,
		now:     time.Now,
	}
}

// AppendTransactionInput represents an entry from the automated
// sales/payout pipeline.
type AppendTransactionInput struct {
	Date        time.Time
	TimeOfDay   string
	AgentID     string
	Area        string
	Type        domain.TransactionType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// Append validates and records a transaction. Amounts are rounded to the
// cent here, at creation time; the balance calculator only sums
// already-rounded values.
func (uc *TransactionUseCase) Append(ctx context.Context, input AppendTransactionInput) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        domain.Day(input.Date),
		TimeOfDay:   input.TimeOfDay,
		AgentID:     input.AgentID,
		Area:        input.Area,
		Type:        input.Type,
		Debit:       domain.RoundAmount(input.Debit),
		Credit:      domain.RoundAmount(input.Credit),
		Description: input.Description,
		CreatedAt:   uc.now().UTC(),
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		return nil, err
	}

	if err := uc.append(ctx, tx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsAppended.Inc()
	}

	return tx, nil
}

// ListTransactionsInput represents input for listing entries.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// List returns transactions in insertion order.
func (uc *TransactionUseCase) List(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}

	if input.Limit > 1000 {
		input.Limit = 1000
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	return uc.txRepo.List(ctx, input.Limit, input.Offset)
}

// ListByDateRange returns transactions whose ledger date falls in the
// inclusive range, in insertion order.
func (uc *TransactionUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return nil, err
	}

	return uc.txRepo.ListByDateRange(ctx, domain.Day(from), domain.Day(to))
}

func (uc *TransactionUseCase) append(ctx context.Context, tx *domain.Transaction) error {
	if uc.retrier == nil {
		return uc.txRepo.Append(ctx, tx)
	}

	return uc.retrier.Retry(ctx, func() error {
		return uc.txRepo.Append(ctx, tx)
	})
}
