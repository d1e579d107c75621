package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/tellerledger/internal/adapter/http/dto"
	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/usecase"
)

// TransactionHandler handles the append-only transaction endpoints.
type TransactionHandler struct {
	txUC     *usecase.TransactionUseCase
	manualUC *usecase.ManualEntryUseCase
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC *usecase.TransactionUseCase, manualUC *usecase.ManualEntryUseCase) *TransactionHandler {
	return &TransactionHandler{txUC: txUC, manualUC: manualUC}
}

// Append records a transaction from the automated pipeline.
func (h *TransactionHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req dto.AppendTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	tx, err := h.txUC.Append(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to append transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// CreateManual records an operator-entered adjustment.
func (h *TransactionHandler) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	tx, err := h.manualUC.Create(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create manual entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// List returns transactions in insertion order, paginated, or filtered by
// an inclusive date range when from/to are given.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("from") != "" || q.Get("to") != "" {
		from, err := time.Parse(domain.DateLayout, q.Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'from' date (use YYYY-MM-DD)", err.Error())
			return
		}
		to, err := time.Parse(domain.DateLayout, q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'to' date (use YYYY-MM-DD)", err.Error())
			return
		}

		transactions, err := h.txUC.ListByDateRange(r.Context(), from, to)
		if err != nil {
			writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
		return
	}

	transactions, err := h.txUC.List(r.Context(), usecase.ListTransactionsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}
