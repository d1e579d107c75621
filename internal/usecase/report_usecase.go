package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tellerledger/internal/domain"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// ReportUseCase computes daily ledgers: day-by-day opening and closing
// balances per agent with cross-day carry-over, deterministic intra-day
// ordering and window totals. A report is a pure function of its inputs and
// the store snapshot it reads.
type ReportUseCase struct {
	txRepo      TransactionRepository
	directory   AgentDirectory
	openingRepo OpeningBalanceRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. cache and metrics may be nil.
func NewReportUseCase(
	txRepo TransactionRepository,
	directory AgentDirectory,
	openingRepo OpeningBalanceRepository,
	cache Cache,
	cacheTTL time.Duration,
	metrics *metrics.Metrics,
) *ReportUseCase {
	return &ReportUseCase{
		txRepo:      txRepo,
		directory:   directory,
		openingRepo: openingRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     metrics,
	}
}

// GenerateReportInput represents one report query.
type GenerateReportInput struct {
	DateFrom time.Time
	DateTo   time.Time
	Scope    domain.ScopeSelector
	Search   string
}

// Generate produces the ledger report for an inclusive date range, scope
// selection and optional free-text search.
func (uc *ReportUseCase) Generate(ctx context.Context, input GenerateReportInput) (*domain.LedgerReport, error) {
	if err := domain.ValidateRange(input.DateFrom, input.DateTo); err != nil {
		return nil, err
	}

	from := domain.Day(input.DateFrom)
	to := domain.Day(input.DateTo)

	cacheKey := reportCacheKey(from, to, input.Scope, input.Search)
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && len(raw) > 0 {
			var cached domain.LedgerReport
			if err := json.Unmarshal(raw, &cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.ReportCacheHits.Inc()
				}
				return &cached, nil
			}
		}
	}

	start := time.Now()

	agents, err := uc.resolveScope(ctx, input.Scope)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.txRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	filtered := filterTransactions(transactions, agents, input.Search)
	keys, buckets := groupTransactions(filtered)

	report := &domain.LedgerReport{
		DateFrom: from,
		DateTo:   to,
		Days:     make([]domain.DayLedger, 0, len(keys)),
	}

	// Closing balances carried across days, keyed by agent identity.
	// Local to this computation; reports never share rolling state.
	closings := make(map[string]decimal.Decimal, len(agents))
	for _, key := range keys {
		day, err := uc.buildDay(ctx, key, buckets[key], agents[key.agentID], closings)
		if err != nil {
			return nil, err
		}
		report.Days = append(report.Days, day)
	}

	report.Totals = computeTotals(report.Days, filtered)

	if uc.metrics != nil {
		uc.metrics.ReportsGenerated.Inc()
		uc.metrics.ReportDuration.Observe(time.Since(start).Seconds())
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(report); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, uc.cacheTTL)
		}
	}

	return report, nil
}

// resolveScope expands the selector into the agents in scope, keyed by id.
// An empty map is a valid scope; unknown ids surface domain.ErrUnknownScope
// from the directory.
func (uc *ReportUseCase) resolveScope(ctx context.Context, scope domain.ScopeSelector) (map[string]*domain.Agent, error) {
	var (
		agents []*domain.Agent
		err    error
	)

	switch scope.Kind() {
	case domain.ScopeAgent:
		var agent *domain.Agent
		agent, err = uc.directory.AgentByID(ctx, scope.ID())
		if agent != nil {
			agents = []*domain.Agent{agent}
		}
	case domain.ScopeArea:
		agents, err = uc.directory.AgentsInArea(ctx, scope.ID())
	case domain.ScopeCollector:
		agents, err = uc.directory.AgentsUnderCollector(ctx, scope.ID())
	default:
		agents, err = uc.directory.AllAgents(ctx)
	}
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Agent, len(agents))
	for _, agent := range agents {
		byID[agent.ID] = agent
	}

	return byID, nil
}

// filterTransactions keeps entries whose agent is in scope and that match
// the free-text search over agent label, description and transaction type.
func filterTransactions(transactions []*domain.Transaction, agents map[string]*domain.Agent, search string) []*domain.Transaction {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		agent, inScope := agents[tx.AgentID]
		if !inScope {
			continue
		}

		if search != "" {
			label := strings.ToLower(agent.Label)
			if !strings.Contains(label, search) &&
				!strings.Contains(strings.ToLower(tx.Description), search) &&
				!strings.Contains(strings.ToLower(string(tx.Type)), search) {
				continue
			}
		}

		filtered = append(filtered, tx)
	}

	return filtered
}

type bucketKey struct {
	day     string
	agentID string
}

// groupTransactions partitions entries into (date, agent) buckets and
// returns the bucket keys in processing order: date ascending, then agent id
// ascending. Processing order matters because carry-over is stateful.
func groupTransactions(transactions []*domain.Transaction) ([]bucketKey, map[bucketKey][]*domain.Transaction) {
	buckets := make(map[bucketKey][]*domain.Transaction)
	keys := make([]bucketKey, 0)

	for _, tx := range transactions {
		key := bucketKey{day: domain.Day(tx.Date).Format(domain.DateLayout), agentID: tx.AgentID}
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], tx)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].agentID < keys[j].agentID
	})

	return keys, buckets
}

// orderEntries establishes the intra-day order: non-manual entries first,
// sorted by time of day; manual entries always last, sorted by their
// insertion sequence regardless of their recorded time. A manual correction
// lands at the end of the day even if its time would place it earlier.
func orderEntries(entries []*domain.Transaction) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsManual != b.IsManual {
			return !a.IsManual
		}
		if a.IsManual {
			return a.ManualSequence < b.ManualSequence
		}
		return a.TimeOfDay < b.TimeOfDay
	})
}

// buildDay walks one ordered bucket, producing per-entry running balances
// and the day's opening/closing values. The closings map is the explicit
// carry-over state: opening balance is the agent's previous closing if one
// was processed in this report, else the seed table value, else zero.
func (uc *ReportUseCase) buildDay(
	ctx context.Context,
	key bucketKey,
	entries []*domain.Transaction,
	agent *domain.Agent,
	closings map[string]decimal.Decimal,
) (domain.DayLedger, error) {
	orderEntries(entries)

	date := domain.Day(entries[0].Date)

	opening, carried := closings[key.agentID]
	if !carried {
		seed, found, err := uc.openingRepo.OpeningBalance(ctx, date, key.agentID)
		if err != nil {
			return domain.DayLedger{}, fmt.Errorf("opening balance lookup for %s: %w", key.agentID, err)
		}
		if found {
			opening = seed
		} else {
			opening = decimal.Zero
		}
	}

	day := domain.DayLedger{
		Date:           date,
		AgentID:        key.agentID,
		OpeningBalance: opening,
		DayDebit:       decimal.Zero,
		DayCredit:      decimal.Zero,
		Lines:          make([]domain.LedgerLine, 0, len(entries)),
	}
	if agent != nil {
		day.AgentLabel = agent.Label
	}

	running := opening
	for _, entry := range entries {
		running = running.Add(entry.Debit).Sub(entry.Credit)
		day.DayDebit = day.DayDebit.Add(entry.Debit)
		day.DayCredit = day.DayCredit.Add(entry.Credit)
		day.Lines = append(day.Lines, domain.LedgerLine{Transaction: entry, Balance: running})
	}

	day.ClosingBalance = running
	closings[key.agentID] = running

	return day, nil
}

// computeTotals aggregates over all processed buckets. Debit/credit totals
// are summed from the flat filtered entry set; by construction they equal
// the sum of per-bucket day totals.
func computeTotals(days []domain.DayLedger, entries []*domain.Transaction) domain.ReportTotals {
	totals := domain.ReportTotals{
		OpeningSum:  decimal.Zero,
		ClosingSum:  decimal.Zero,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	agentsSeen := make(map[string]struct{})
	daysSeen := make(map[string]struct{})

	for i := range days {
		totals.OpeningSum = totals.OpeningSum.Add(days[i].OpeningBalance)
		totals.ClosingSum = totals.ClosingSum.Add(days[i].ClosingBalance)
		agentsSeen[days[i].AgentID] = struct{}{}
		daysSeen[days[i].Date.Format(domain.DateLayout)] = struct{}{}
	}

	for _, entry := range entries {
		totals.TotalDebit = totals.TotalDebit.Add(entry.Debit)
		totals.TotalCredit = totals.TotalCredit.Add(entry.Credit)
	}

	totals.AgentCount = len(agentsSeen)
	totals.DayCount = len(daysSeen)

	return totals
}

func reportCacheKey(from, to time.Time, scope domain.ScopeSelector, search string) string {
	return fmt.Sprintf("report:%s:%s:%d:%s:%s",
		from.Format(domain.DateLayout),
		to.Format(domain.DateLayout),
		scope.Kind(),
		scope.ID(),
		strings.ToLower(strings.TrimSpace(search)),
	)
}
