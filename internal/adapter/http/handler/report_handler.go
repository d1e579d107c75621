package handler

import (
	"net/http"

	"github.com/iho/tellerledger/internal/adapter/http/dto"
	"github.com/iho/tellerledger/internal/usecase"
)

// ReportHandler serves running-balance ledger reports.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Get computes the report for the requested window and scope.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	query, err := dto.ParseReportQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report query", err.Error())
		return
	}

	report, err := h.reportUC.Generate(r.Context(), usecase.GenerateReportInput{
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Scope:    query.Scope,
		Search:   query.Search,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(report))
}
