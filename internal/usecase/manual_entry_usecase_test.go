package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/usecase"
	"github.com/iho/tellerledger/internal/usecase/mocks"
)

func TestManualEntryUseCase_Create(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	tx, err := uc.Create(context.Background(), usecase.CreateManualEntryInput{
		Date:        day("2025-10-01"),
		TimeOfDay:   "08:00:00",
		AgentID:     "A1",
		Type:        domain.TypeDeficit,
		Side:        usecase.ManualDebit,
		Amount:      decimal.RequireFromString("200.005"),
		Description: "shortage after count",
	})
	require.NoError(t, err)

	assert.True(t, tx.IsManual)
	assert.Equal(t, int64(1), tx.ManualSequence)
	assert.True(t, tx.Debit.Equal(decimal.RequireFromString("200.01")), "amount rounded at creation, got %s", tx.Debit)
	assert.True(t, tx.Credit.IsZero())
	assert.NotEmpty(t, tx.ID)
}

func TestManualEntryUseCase_CreditSide(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	tx, err := uc.Create(context.Background(), usecase.CreateManualEntryInput{
		Date:    day("2025-10-01"),
		AgentID: "A1",
		Type:    domain.TypeCollection,
		Side:    usecase.ManualCredit,
		Amount:  decimal.NewFromInt(75),
	})
	require.NoError(t, err)

	assert.True(t, tx.Debit.IsZero())
	assert.True(t, tx.Credit.Equal(decimal.NewFromInt(75)))
}

func TestManualEntryUseCase_SequenceIsMonotonic(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	var last int64
	for i := 0; i < 5; i++ {
		tx, err := uc.Create(context.Background(), usecase.CreateManualEntryInput{
			Date:    day("2025-10-01"),
			AgentID: "A1",
			Type:    domain.TypeDeficit,
			Side:    usecase.ManualDebit,
			Amount:  decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
		require.Greater(t, tx.ManualSequence, last, "sequence must strictly increase")
		last = tx.ManualSequence
	}
}

func TestManualEntryUseCase_RejectsBadInput(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	tests := []struct {
		name  string
		input usecase.CreateManualEntryInput
	}{
		{
			name: "unknown side",
			input: usecase.CreateManualEntryInput{
				Date: day("2025-10-01"), AgentID: "A1", Side: "both", Amount: decimal.NewFromInt(1),
			},
		},
		{
			name: "negative amount",
			input: usecase.CreateManualEntryInput{
				Date: day("2025-10-01"), AgentID: "A1", Side: usecase.ManualDebit, Amount: decimal.NewFromInt(-1),
			},
		},
		{
			name: "missing agent",
			input: usecase.CreateManualEntryInput{
				Date: day("2025-10-01"), Side: usecase.ManualDebit, Amount: decimal.NewFromInt(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
		})
	}
}

func TestManualEntryUseCase_AnyTypeLabelAccepted(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	tx, err := uc.Create(context.Background(), usecase.CreateManualEntryInput{
		Date:    day("2025-10-01"),
		AgentID: "A1",
		Type:    "ADJUSTMENT",
		Side:    usecase.ManualDebit,
		Amount:  decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionType("ADJUSTMENT"), tx.Type)
}

func TestManualEntryUseCase_SequenceErrorSurfaces(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	txRepo.NextManualSequenceFunc = func(ctx context.Context) (int64, error) {
		return 0, errors.New("sequence unavailable")
	}

	uc := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.Create(context.Background(), usecase.CreateManualEntryInput{
		Date:    day("2025-10-01"),
		AgentID: "A1",
		Side:    usecase.ManualDebit,
		Amount:  decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence unavailable")
}
