package rates

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrRateFetch covers transport failures, non-2xx responses and
// undecodable bodies from the upstream rates API.
var ErrRateFetch = errors.New("exchange rate fetch failed")

// Fetcher retrieves the current 1 USD -> asset exchange rates,
// keyed by uppercase symbol.
type Fetcher interface {
	Fetch() (map[string]decimal.Decimal, error)
}

// Provider serves rates, possibly from a cache.
type Provider interface {
	Rates() (map[string]decimal.Decimal, error)
}

// Snapshot is one fetched rate map plus its fetch time. The map is
// never mutated after construction; callers replace the whole value.
type Snapshot struct {
	FetchedAt time.Time
	Rates     map[string]decimal.Decimal
}

// Fresh reports whether the snapshot is younger than ttl at the given time.
func (s *Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	if s == nil || s.Rates == nil {
		return false
	}
	return now.Sub(s.FetchedAt) < ttl
}
