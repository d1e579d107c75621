package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
)

// MockTransactionRepository is an in-memory, append-only implementation of
// usecase.TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	sequence     int64

	AppendFunc             func(ctx context.Context, tx *domain.Transaction) error
	ListFunc               func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListByDateRangeFunc    func(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error)
	NextManualSequenceFunc func(ctx context.Context) (int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.transactions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.transactions) {
		end = len(m.transactions)
	}
	out := make([]*domain.Transaction, end-offset)
	copy(out, m.transactions[offset:end])
	return out, nil
}

func (m *MockTransactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		day := domain.Day(tx.Date)
		if day.Before(domain.Day(from)) || day.After(domain.Day(to)) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (m *MockTransactionRepository) NextManualSequence(ctx context.Context) (int64, error) {
	if m.NextManualSequenceFunc != nil {
		return m.NextManualSequenceFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence++
	return m.sequence, nil
}

// MockAgentDirectory is an in-memory usecase.AgentDirectory.
type MockAgentDirectory struct {
	mu     sync.RWMutex
	agents []*domain.Agent
	areas  map[string]*domain.Area

	AllAgentsFunc            func(ctx context.Context) ([]*domain.Agent, error)
	AgentByIDFunc            func(ctx context.Context, id string) (*domain.Agent, error)
	AgentsInAreaFunc         func(ctx context.Context, areaID string) ([]*domain.Agent, error)
	AgentsUnderCollectorFunc func(ctx context.Context, collectorID string) ([]*domain.Agent, error)
}

func NewMockAgentDirectory(agents []*domain.Agent, areas []*domain.Area) *MockAgentDirectory {
	byID := make(map[string]*domain.Area, len(areas))
	for _, area := range areas {
		byID[area.ID] = area
	}
	return &MockAgentDirectory{agents: agents, areas: byID}
}

func (m *MockAgentDirectory) AllAgents(ctx context.Context) ([]*domain.Agent, error) {
	if m.AllAgentsFunc != nil {
		return m.AllAgentsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.agents, nil
}

func (m *MockAgentDirectory) AgentByID(ctx context.Context, id string) (*domain.Agent, error) {
	if m.AgentByIDFunc != nil {
		return m.AgentByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, agent := range m.agents {
		if agent.ID == id {
			return agent, nil
		}
	}
	return nil, domain.ErrUnknownAgent
}

func (m *MockAgentDirectory) AgentsInArea(ctx context.Context, areaID string) ([]*domain.Agent, error) {
	if m.AgentsInAreaFunc != nil {
		return m.AgentsInAreaFunc(ctx, areaID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.areas[areaID]; !ok {
		return nil, domain.ErrUnknownArea
	}
	var out []*domain.Agent
	for _, agent := range m.agents {
		if agent.AreaID == areaID {
			out = append(out, agent)
		}
	}
	return out, nil
}

func (m *MockAgentDirectory) AgentsUnderCollector(ctx context.Context, collectorID string) ([]*domain.Agent, error) {
	if m.AgentsUnderCollectorFunc != nil {
		return m.AgentsUnderCollectorFunc(ctx, collectorID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	serviced := make(map[string]bool)
	known := false
	for _, area := range m.areas {
		if area.CollectorID == collectorID {
			serviced[area.ID] = true
			known = true
		}
	}
	if !known {
		return nil, domain.ErrUnknownCollector
	}
	var out []*domain.Agent
	for _, agent := range m.agents {
		if serviced[agent.AreaID] {
			out = append(out, agent)
		}
	}
	return out, nil
}

// MockOpeningBalances is an in-memory usecase.OpeningBalanceRepository
// keyed by (date, agent).
type MockOpeningBalances struct {
	mu    sync.RWMutex
	seeds map[string]decimal.Decimal

	OpeningBalanceFunc func(ctx context.Context, date time.Time, agentID string) (decimal.Decimal, bool, error)
}

func NewMockOpeningBalances() *MockOpeningBalances {
	return &MockOpeningBalances{seeds: make(map[string]decimal.Decimal)}
}

func (m *MockOpeningBalances) Seed(date time.Time, agentID string, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeds[seedKey(date, agentID)] = amount
}

func (m *MockOpeningBalances) OpeningBalance(ctx context.Context, date time.Time, agentID string) (decimal.Decimal, bool, error) {
	if m.OpeningBalanceFunc != nil {
		return m.OpeningBalanceFunc(ctx, date, agentID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	amount, ok := m.seeds[seedKey(date, agentID)]
	if !ok {
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

func seedKey(date time.Time, agentID string) string {
	return domain.Day(date).Format(domain.DateLayout) + "|" + agentID
}

// MockIDGenerator returns sequential ids unless GenerateFunc is set.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "tx-" + strconv.Itoa(m.counter)
}

// MockCache is an in-memory usecase.Cache. TTLs are ignored.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
