package usecase

import (
	"context"

	"github.com/iho/tellerledger/internal/domain"
)

// DirectoryUseCase exposes the agent/area reference data reads.
type DirectoryUseCase struct {
	directory AgentDirectory
}

// NewDirectoryUseCase creates a new DirectoryUseCase.
func NewDirectoryUseCase(directory AgentDirectory) *DirectoryUseCase {
	return &DirectoryUseCase{directory: directory}
}

// ListAgents returns every agent known to the directory.
func (uc *DirectoryUseCase) ListAgents(ctx context.Context) ([]*domain.Agent, error) {
	return uc.directory.AllAgents(ctx)
}

// ListAgentsInArea returns the agents registered under an area.
func (uc *DirectoryUseCase) ListAgentsInArea(ctx context.Context, areaID string) ([]*domain.Agent, error) {
	return uc.directory.AgentsInArea(ctx, areaID)
}

// ListAgentsUnderCollector returns the tellers under the areas a collector
// services. The collector itself is never included.
func (uc *DirectoryUseCase) ListAgentsUnderCollector(ctx context.Context, collectorID string) ([]*domain.Agent, error) {
	return uc.directory.AgentsUnderCollector(ctx, collectorID)
}
