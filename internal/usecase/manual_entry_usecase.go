package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// ManualEntrySide designates which side of the ledger a manual entry hits.
type ManualEntrySide string

const (
	ManualDebit  ManualEntrySide = "debit"
	ManualCredit ManualEntrySide = "credit"
)

// ManualEntryUseCase is the append path for out-of-band corrections. A
// manual entry carries a process-wide monotonic sequence number that orders
// it after all automated entries of its day; the sequence is never reused,
// even across report regenerations.
type ManualEntryUseCase struct {
	txRepo  TransactionRepository
	idGen   IDGenerator
	retrier Retrier
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewManualEntryUseCase creates a new ManualEntryUseCase. retrier and
// metrics may be nil.
func NewManualEntryUseCase(txRepo TransactionRepository, idGen IDGenerator, retrier Retrier, metrics *metrics.Metrics) *ManualEntryUseCase {
	return &ManualEntryUseCase{
		txRepo:  txRepo,
		idGen:   idGen,
		retrier: retrier,
		metrics: metrics,
		now:     time.Now,
	}
}

// CreateManualEntryInput represents a manual entry submission. A single
// amount is applied to the chosen side; a manual entry never carries both a
// debit and a credit.
type CreateManualEntryInput struct {
	Date        time.Time
	TimeOfDay   string
	AgentID     string
	Area        string
	Type        domain.TransactionType
	Side        ManualEntrySide
	Amount      decimal.Decimal
	Description string
}

// Create assigns the next manual sequence value, defaults debit/credit from
// the chosen side and appends the entry. Any transaction type label is
// accepted.
func (uc *ManualEntryUseCase) Create(ctx context.Context, input CreateManualEntryInput) (*domain.Transaction, error) {
	if input.Side != ManualDebit && input.Side != ManualCredit {
		return nil, fmt.Errorf("%w: side must be debit or credit", domain.ErrInvalidTransaction)
	}

	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", domain.ErrInvalidTransaction)
	}

	seq, err := uc.txRepo.NextManualSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("manual sequence: %w", err)
	}

	amount := domain.RoundAmount(input.Amount)

	tx := &domain.Transaction{
		ID:             uc.idGen.Generate(),
		Date:           domain.Day(input.Date),
		TimeOfDay:      input.TimeOfDay,
		AgentID:        input.AgentID,
		Area:           input.Area,
		Type:           input.Type,
		Debit:          decimal.Zero,
		Credit:         decimal.Zero,
		Description:    input.Description,
		IsManual:       true,
		ManualSequence: seq,
		CreatedAt:      uc.now().UTC(),
	}

	if input.Side == ManualDebit {
		tx.Debit = amount
	} else {
		tx.Credit = amount
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		return nil, err
	}

	if err := uc.append(ctx, tx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ManualEntriesCreated.Inc()
	}

	return tx, nil
}

func (uc *ManualEntryUseCase) append(ctx context.Context, tx *domain.Transaction) error {
	if uc.retrier == nil {
		return uc.txRepo.Append(ctx, tx)
	}

	return uc.retrier.Retry(ctx, func() error {
		return uc.txRepo.Append(ctx, tx)
	})
}
