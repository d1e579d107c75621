package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tellerledger/internal/adapter/http/dto"
	"github.com/iho/tellerledger/internal/usecase"
)

// DirectoryHandler serves the agent/area reference data.
type DirectoryHandler struct {
	directoryUC *usecase.DirectoryUseCase
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryUC *usecase.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: directoryUC}
}

// ListAgents lists every registered agent.
func (h *DirectoryHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.directoryUC.ListAgents(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list agents", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AgentsFromDomain(agents))
}

// ListAgentsInArea lists the agents registered under an area.
func (h *DirectoryHandler) ListAgentsInArea(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")
	if areaID == "" {
		writeError(w, http.StatusBadRequest, "missing area ID", "")
		return
	}

	agents, err := h.directoryUC.ListAgentsInArea(r.Context(), areaID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list agents", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AgentsFromDomain(agents))
}

// ListAgentsUnderCollector lists the tellers under a collector's areas.
func (h *DirectoryHandler) ListAgentsUnderCollector(w http.ResponseWriter, r *http.Request) {
	collectorID := chi.URLParam(r, "id")
	if collectorID == "" {
		writeError(w, http.StatusBadRequest, "missing collector ID", "")
		return
	}

	agents, err := h.directoryUC.ListAgentsUnderCollector(r.Context(), collectorID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list agents", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AgentsFromDomain(agents))
}
