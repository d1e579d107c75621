package usecase

import "time"

const (
	// DefaultReportCacheTTL is how long a computed report stays cached.
	// Reports are deterministic for an unchanged store, so a short TTL only
	// bounds staleness after new appends.
	DefaultReportCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
