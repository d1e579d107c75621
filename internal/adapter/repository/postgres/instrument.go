package postgres

import (
	"time"

	"github.com/iho/tellerledger/internal/infrastructure/metrics"
)

// dbMetrics records per-operation query counters and latency. A nil
// Metrics disables instrumentation.
type dbMetrics struct {
	m *metrics.Metrics
}

func (d dbMetrics) observe(op string, start time.Time, err error) {
	if d.m == nil {
		return
	}
	d.m.DBQueries.WithLabelValues(op).Inc()
	d.m.DBDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		d.m.DBErrors.WithLabelValues(op).Inc()
	}
}
