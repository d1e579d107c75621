package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
)

// TransactionResponse represents a ledger transaction in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	TimeOfDay      string          `json:"time_of_day,omitempty"`
	AgentID        string          `json:"agent_id"`
	Area           string          `json:"area,omitempty"`
	Type           string          `json:"type"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description,omitempty"`
	IsManual       bool            `json:"is_manual"`
	ManualSequence int64           `json:"manual_sequence,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:             t.ID,
		Date:           t.Date.Format(domain.DateLayout),
		TimeOfDay:      t.TimeOfDay,
		AgentID:        t.AgentID,
		Area:           t.Area,
		Type:           string(t.Type),
		Debit:          t.Debit,
		Credit:         t.Credit,
		Description:    t.Description,
		IsManual:       t.IsManual,
		ManualSequence: t.ManualSequence,
		CreatedAt:      t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// LedgerLineResponse is one report row: the transaction plus the running
// balance after it was applied.
type LedgerLineResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Balance     decimal.Decimal      `json:"balance"`
}

// DayLedgerResponse is one (date, agent) bucket of the report.
type DayLedgerResponse struct {
	Date           string               `json:"date"`
	AgentID        string               `json:"agent_id"`
	AgentLabel     string               `json:"agent_label,omitempty"`
	OpeningBalance decimal.Decimal      `json:"opening_balance"`
	ClosingBalance decimal.Decimal      `json:"closing_balance"`
	DayDebit       decimal.Decimal      `json:"day_debit"`
	DayCredit      decimal.Decimal      `json:"day_credit"`
	Lines          []LedgerLineResponse `json:"lines"`
}

// ReportTotalsResponse aggregates over every bucket in the window.
type ReportTotalsResponse struct {
	OpeningSum  decimal.Decimal `json:"opening_sum"`
	ClosingSum  decimal.Decimal `json:"closing_sum"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	AgentCount  int             `json:"agent_count"`
	DayCount    int             `json:"day_count"`
}

// ReportResponse represents a full ledger report in API responses.
type ReportResponse struct {
	DateFrom string               `json:"date_from"`
	DateTo   string               `json:"date_to"`
	Days     []DayLedgerResponse  `json:"days"`
	Totals   ReportTotalsResponse `json:"totals"`
}

// ReportFromDomain converts a domain report to a response.
func ReportFromDomain(report *domain.LedgerReport) *ReportResponse {
	days := make([]DayLedgerResponse, len(report.Days))
	for i, d := range report.Days {
		lines := make([]LedgerLineResponse, len(d.Lines))
		for j, l := range d.Lines {
			lines[j] = LedgerLineResponse{
				Transaction: TransactionFromDomain(l.Transaction),
				Balance:     l.Balance,
			}
		}
		days[i] = DayLedgerResponse{
			Date:           d.Date.Format(domain.DateLayout),
			AgentID:        d.AgentID,
			AgentLabel:     d.AgentLabel,
			OpeningBalance: d.OpeningBalance,
			ClosingBalance: d.ClosingBalance,
			DayDebit:       d.DayDebit,
			DayCredit:      d.DayCredit,
			Lines:          lines,
		}
	}
	return &ReportResponse{
		DateFrom: report.DateFrom.Format(domain.DateLayout),
		DateTo:   report.DateTo.Format(domain.DateLayout),
		Days:     days,
		Totals: ReportTotalsResponse{
			OpeningSum:  report.Totals.OpeningSum,
			ClosingSum:  report.Totals.ClosingSum,
			TotalDebit:  report.Totals.TotalDebit,
			TotalCredit: report.Totals.TotalCredit,
			AgentCount:  report.Totals.AgentCount,
			DayCount:    report.Totals.DayCount,
		},
	}
}

// AgentResponse represents a directory agent in API responses.
type AgentResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	AreaID string `json:"area_id,omitempty"`
}

// AgentsFromDomain converts directory agents to responses.
func AgentsFromDomain(agents []*domain.Agent) []*AgentResponse {
	result := make([]*AgentResponse, len(agents))
	for i, a := range agents {
		result[i] = &AgentResponse{ID: a.ID, Label: a.Label, AreaID: a.AreaID}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
