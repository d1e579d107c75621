package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical wire format for ledger dates.
const DateLayout = "2006-01-02"

// TransactionType labels a ledger entry for reporting. The set is open:
// unknown labels flow through the engine untouched.
type TransactionType string

const (
	TypeSales        TransactionType = "SALES"
	TypeNet          TransactionType = "NET"
	TypePayout       TransactionType = "PAYOUT"
	TypeRemittance   TransactionType = "REMITTANCE"
	TypeCollection   TransactionType = "COLLECTION"
	TypeDeficit      TransactionType = "DEFICIT"
	TypeForceBalance TransactionType = "FORCE_BALANCE"
)

// Transaction represents a single ledger entry for one agent on one day.
// Entries are append-only; corrections are new manual entries.
type Transaction struct {
	ID             string
	Date           time.Time
	TimeOfDay      string
	AgentID        string
	Area           string
	Type           TransactionType
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Description    string
	IsManual       bool
	ManualSequence int64
	CreatedAt      time.Time
}

// Delta is the entry's effect on the running balance: debit minus credit.
func (t *Transaction) Delta() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}

// Day truncates a timestamp to its UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
