package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// DirectoryRepository implements usecase.AgentDirectory over the agents and
// areas reference tables. Unknown ids map to domain.ErrUnknownScope
// variants so callers can tell them from a valid empty scope.
type DirectoryRepository struct {
	pool    *pgxpool.Pool
	metrics dbMetrics
}

// NewDirectoryRepository creates a new DirectoryRepository. m may be nil.
func NewDirectoryRepository(pool *pgxpool.Pool, m *metrics.Metrics) *DirectoryRepository {
	return &DirectoryRepository{pool: pool, metrics: dbMetrics{m: m}}
}

// AllAgents returns every registered agent ordered by id.
func (r *DirectoryRepository) AllAgents(ctx context.Context) ([]*domain.Agent, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, `SELECT id, label, area_id FROM agents ORDER BY id`)
	r.metrics.observe("agents_all", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgents(rows)
}

// AgentByID returns a single agent.
func (r *DirectoryRepository) AgentByID(ctx context.Context, id string) (*domain.Agent, error) {
	var agent domain.Agent

	start := time.Now()
	err := r.pool.QueryRow(ctx, `SELECT id, label, area_id FROM agents WHERE id = $1`, id).
		Scan(&agent.ID, &agent.Label, &agent.AreaID)
	r.metrics.observe("agent_by_id", start, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnknownAgent
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

// AgentsInArea returns the agents registered under an area.
func (r *DirectoryRepository) AgentsInArea(ctx context.Context, areaID string) ([]*domain.Agent, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM areas WHERE id = $1)`, areaID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUnknownArea
	}

	start := time.Now()
	rows, err := r.pool.Query(ctx, `SELECT id, label, area_id FROM agents WHERE area_id = $1 ORDER BY id`, areaID)
	r.metrics.observe("agents_in_area", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgents(rows)
}

// AgentsUnderCollector returns the tellers under every area the collector
// services. The collector itself is never part of the result.
func (r *DirectoryRepository) AgentsUnderCollector(ctx context.Context, collectorID string) ([]*domain.Agent, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM areas WHERE collector_id = $1)`, collectorID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUnknownCollector
	}

	query := `
		SELECT a.id, a.label, a.area_id
		FROM agents a
		JOIN areas ar ON ar.id = a.area_id
		WHERE ar.collector_id = $1
		ORDER BY a.id
	`

	start := time.Now()
	rows, err := r.pool.Query(ctx, query, collectorID)
	r.metrics.observe("agents_under_collector", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgents(rows)
}

func scanAgents(rows pgx.Rows) ([]*domain.Agent, error) {
	var agents []*domain.Agent

	for rows.Next() {
		var agent domain.Agent
		if err := rows.Scan(&agent.ID, &agent.Label, &agent.AreaID); err != nil {
			return nil, err
		}
		agents = append(agents, &agent)
	}

	return agents, rows.Err()
}
