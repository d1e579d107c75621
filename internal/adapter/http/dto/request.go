package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/usecase"
)

// AppendTransactionRequest represents an entry pushed by the automated
// sales/payout pipeline.
type AppendTransactionRequest struct {
	Date        string          `json:"date"`
	TimeOfDay   string          `json:"time_of_day,omitempty"`
	AgentID     string          `json:"agent_id"`
	Area        string          `json:"area,omitempty"`
	Type        string          `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AppendTransactionRequest) ToUseCaseInput() (usecase.AppendTransactionInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.AppendTransactionInput{}, err
	}
	return usecase.AppendTransactionInput{
		Date:        date,
		TimeOfDay:   r.TimeOfDay,
		AgentID:     r.AgentID,
		Area:        r.Area,
		Type:        domain.TransactionType(r.Type),
		Debit:       r.Debit,
		Credit:      r.Credit,
		Description: r.Description,
	}, nil
}

// CreateManualEntryRequest represents a manual adjustment typed by an
// operator. The side decides which column the amount lands in.
type CreateManualEntryRequest struct {
	Date        string          `json:"date"`
	TimeOfDay   string          `json:"time_of_day,omitempty"`
	AgentID     string          `json:"agent_id"`
	Area        string          `json:"area,omitempty"`
	Type        string          `json:"type"`
	Side        string          `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateManualEntryRequest) ToUseCaseInput() (usecase.CreateManualEntryInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.CreateManualEntryInput{}, err
	}
	return usecase.CreateManualEntryInput{
		Date:        date,
		TimeOfDay:   r.TimeOfDay,
		AgentID:     r.AgentID,
		Area:        r.Area,
		Type:        domain.TransactionType(r.Type),
		Side:        usecase.ManualEntrySide(r.Side),
		Amount:      r.Amount,
		Description: r.Description,
	}, nil
}

// ReportQuery holds the parsed query string of a report request.
type ReportQuery struct {
	DateFrom time.Time
	DateTo   time.Time
	Scope    domain.ScopeSelector
	Search   string
}

// ParseReportQuery reads report parameters from the request. from and to
// are required calendar dates; at most one scope id is honored, with the
// narrowest selection winning.
func ParseReportQuery(r *http.Request) (ReportQuery, error) {
	q := r.URL.Query()

	from, err := parseDate(q.Get("from"))
	if err != nil {
		return ReportQuery{}, fmt.Errorf("from: %w", err)
	}
	to, err := parseDate(q.Get("to"))
	if err != nil {
		return ReportQuery{}, fmt.Errorf("to: %w", err)
	}

	return ReportQuery{
		DateFrom: from,
		DateTo:   to,
		Scope:    domain.ResolveSelector(q.Get("agent_id"), q.Get("area_id"), q.Get("collector_id")),
		Search:   q.Get("q"),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", value)
	}
	return date, nil
}
