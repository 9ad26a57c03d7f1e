package services

import "time"

// DefaultFreshnessMaxAge is the staleness threshold for cached
// profiles.
const DefaultFreshnessMaxAge = 30 * 24 * time.Hour

// Freshness decides whether a cached record is recent enough to serve
// without re-hydration.
type Freshness struct {
	MaxAge time.Duration
}

func NewFreshness(maxAge time.Duration) Freshness {
	if maxAge <= 0 {
		maxAge = DefaultFreshnessMaxAge
	}
	return Freshness{MaxAge: maxAge}
}

// Fresh is strict: a record updated exactly MaxAge ago is stale.
func (f Freshness) Fresh(lastUpdated, now time.Time) bool {
	return now.Sub(lastUpdated) < f.MaxAge
}
