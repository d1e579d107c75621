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

func TestTransactionUseCase_Append(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewTransactionUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	tx, err := uc.Append(context.Background(), usecase.AppendTransactionInput{
		Date:      day("2025-10-01"),
		TimeOfDay: "09:15:00",
		AgentID:   "A1",
		Area:      "north",
		Type:      domain.TypeSales,
		Debit:     decimal.RequireFromString("1000.004"),
		Credit:    decimal.Zero,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.IsManual)
	assert.True(t, tx.Debit.Equal(decimal.NewFromInt(1000)), "debit rounded at creation, got %s", tx.Debit)

	stored, err := uc.List(context.Background(), usecase.ListTransactionsInput{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, tx.ID, stored[0].ID)
}

func TestTransactionUseCase_AppendValidation(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewTransactionUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.Append(context.Background(), usecase.AppendTransactionInput{
		Date:   day("2025-10-01"),
		Type:   domain.TypeSales,
		Debit:  decimal.NewFromInt(10),
		Credit: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransaction)

	_, err = uc.Append(context.Background(), usecase.AppendTransactionInput{
		Date:    day("2025-10-01"),
		AgentID: "A1",
		Type:    domain.TypeSales,
		Debit:   decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
}

func TestTransactionUseCase_AppendRetries(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()

	attempts := 0
	txRepo.AppendFunc = func(ctx context.Context, tx *domain.Transaction) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient")
		}
		return nil
	}

	uc := usecase.NewTransactionUseCase(txRepo, mocks.NewMockIDGenerator(), retrierFunc(func(ctx context.Context, op func() error) error {
		var err error
		for i := 0; i < 2; i++ {
			if err = op(); err == nil {
				return nil
			}
		}
		return err
	}), nil)

	_, err := uc.Append(context.Background(), usecase.AppendTransactionInput{
		Date:    day("2025-10-01"),
		AgentID: "A1",
		Type:    domain.TypeSales,
		Debit:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

type retrierFunc func(ctx context.Context, op func() error) error

func (f retrierFunc) Retry(ctx context.Context, op func() error) error { return f(ctx, op) }

func TestTransactionUseCase_ListClampsPagination(t *testing.T) {
	txRepo := mocks.NewMockTransactionRepository()

	var gotLimit, gotOffset int
	txRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}

	uc := usecase.NewTransactionUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.List(context.Background(), usecase.ListTransactionsInput{Limit: 99999, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 1000, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestTransactionUseCase_ListByDateRangeValidatesRange(t *testing.T) {
	uc := usecase.NewTransactionUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.ListByDateRange(context.Background(), day("2025-10-31"), day("2025-10-01"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
