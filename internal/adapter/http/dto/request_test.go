package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
)

func TestAppendTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := &AppendTransactionRequest{
		Date:      "2025-10-01",
		TimeOfDay: "09:15:00",
		AgentID:   "A1",
		Area:      "north",
		Type:      "SALES",
		Debit:     decimal.NewFromInt(100),
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.AgentID != "A1" || got.Type != domain.TypeSales {
		t.Fatalf("unexpected conversion: %+v", got)
	}
	if got.Date.Format(domain.DateLayout) != "2025-10-01" {
		t.Fatalf("unexpected date: %s", got.Date)
	}
}

func TestAppendTransactionRequest_RejectsBadDate(t *testing.T) {
	req := &AppendTransactionRequest{Date: "01/10/2025", AgentID: "A1"}

	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}

	req.Date = ""
	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatalf("expected error for missing date")
	}
}

func TestParseReportQuery_ScopePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.ScopeKind
		id       string
	}{
		{"no scope", "", domain.ScopeAll, ""},
		{"area only", "&area_id=north", domain.ScopeArea, "north"},
		{"collector beats area", "&area_id=north&collector_id=C1", domain.ScopeCollector, "C1"},
		{"agent beats everything", "&agent_id=A1&area_id=north&collector_id=C1", domain.ScopeAgent, "A1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/ledger/report?from=2025-10-01&to=2025-10-02"+tt.query, nil)

			q, err := ParseReportQuery(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Scope.Kind() != tt.expected || q.Scope.ID() != tt.id {
				t.Fatalf("expected scope %v/%q, got %v/%q", tt.expected, tt.id, q.Scope.Kind(), q.Scope.ID())
			}
		})
	}
}

func TestParseReportQuery_RequiresWindow(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/ledger/report?from=2025-10-01", nil)
	if _, err := ParseReportQuery(r); err == nil {
		t.Fatalf("expected error for missing 'to'")
	}

	r = httptest.NewRequest("GET", "/api/v1/ledger/report?to=2025-10-02", nil)
	if _, err := ParseReportQuery(r); err == nil {
		t.Fatalf("expected error for missing 'from'")
	}
}
