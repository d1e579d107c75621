package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/adapter/http/dto"
	"github.com/iho/tellerledger/internal/usecase"
	"github.com/iho/tellerledger/internal/usecase/mocks"
)

func newTransactionHandler() *TransactionHandler {
	txRepo := mocks.NewMockTransactionRepository()
	txUC := usecase.NewTransactionUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)
	manualUC := usecase.NewManualEntryUseCase(txRepo, mocks.NewMockIDGenerator(), nil, nil)
	return NewTransactionHandler(txUC, manualUC)
}

func TestTransactionHandler_Append(t *testing.T) {
	h := newTransactionHandler()

	body := `{"date":"2025-10-01","time_of_day":"09:15:00","agent_id":"A1","area":"north","type":"SALES","debit":"1000.004","credit":"0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Append(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", rr.Code, rr.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID == "" || resp.IsManual {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.Debit.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected debit rounded to 1000, got %s", resp.Debit)
	}
}

func TestTransactionHandler_AppendRejectsBadBody(t *testing.T) {
	h := newTransactionHandler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"bad date", `{"date":"01/10/2025","agent_id":"A1","type":"SALES"}`},
		{"missing agent", `{"date":"2025-10-01","type":"SALES","debit":"10"}`},
		{"negative amount", `{"date":"2025-10-01","agent_id":"A1","type":"SALES","debit":"-10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.Append(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestTransactionHandler_CreateManual(t *testing.T) {
	h := newTransactionHandler()

	body := `{"date":"2025-10-01","agent_id":"A1","type":"DEFICIT","side":"debit","amount":"200.005","description":"shortage after count"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/manual", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.CreateManual(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", rr.Code, rr.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.IsManual || resp.ManualSequence != 1 {
		t.Fatalf("expected manual entry with sequence 1, got %+v", resp)
	}
	if !resp.Debit.Equal(decimal.RequireFromString("200.01")) {
		t.Fatalf("expected amount rounded to 200.01, got %s", resp.Debit)
	}
}

func TestTransactionHandler_CreateManualRejectsUnknownSide(t *testing.T) {
	h := newTransactionHandler()

	body := `{"date":"2025-10-01","agent_id":"A1","type":"DEFICIT","side":"both","amount":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/manual", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.CreateManual(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestTransactionHandler_ListByDateRange(t *testing.T) {
	h := newTransactionHandler()

	body := `{"date":"2025-10-01","agent_id":"A1","type":"SALES","debit":"10","credit":"0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	h.Append(httptest.NewRecorder(), req)

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?from=2025-10-01&to=2025-10-02", nil)
	rr := httptest.NewRecorder()

	h.List(rr, listReq)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp []dto.TransactionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one transaction, got %d", len(resp))
	}
}
