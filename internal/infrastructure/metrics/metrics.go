package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Report metrics
	ReportsGenerated prometheus.Counter
	ReportDuration   prometheus.Histogram
	ReportCacheHits  prometheus.Counter

	// Ledger metrics
	TransactionsAppended prometheus.Counter
	ManualEntriesCreated prometheus.Counter

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_reports_generated_total",
			Help: "Total number of ledger reports generated",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_report_duration_seconds",
			Help:    "Report computation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		ReportCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_report_cache_hits_total",
			Help: "Total number of reports served from cache",
		}),
		TransactionsAppended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_appended_total",
			Help: "Total number of transactions appended to the ledger",
		}),
		ManualEntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_manual_entries_created_total",
			Help: "Total number of manual entries created",
		}),
		DBQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_db_queries_total",
			Help: "Total number of database queries",
		}, []string{"operation"}),
		DBDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		DBErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_db_errors_total",
			Help: "Total number of database errors",
		}, []string{"operation"}),
	}
}
