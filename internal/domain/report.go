package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is a transaction together with the running balance after it
// was applied.
type LedgerLine struct {
	Transaction *Transaction
	Balance     decimal.Decimal
}

// DayLedger is the processed bucket for one agent on one calendar date:
// ordered lines, resolved opening balance and the resulting closing balance.
// Derived on every report; never persisted.
type DayLedger struct {
	Date           time.Time
	AgentID        string
	AgentLabel     string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	DayDebit       decimal.Decimal
	DayCredit      decimal.Decimal
	Lines          []LedgerLine
}

// ReportTotals aggregates over every processed bucket in the window.
type ReportTotals struct {
	OpeningSum  decimal.Decimal
	ClosingSum  decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	AgentCount  int
	DayCount    int
}

// LedgerReport is the output of one report computation: buckets in
// processing order plus window totals.
type LedgerReport struct {
	DateFrom time.Time
	DateTo   time.Time
	Days     []DayLedger
	Totals   ReportTotals
}
