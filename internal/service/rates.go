package service

import (
	"log/slog"
	"sync"
	"time"

	"coincompare/pkg/types/rates"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidRateServiceConfig = errors.New("invalid rate service config")

const DefaultTTL = time.Minute

// RateService serves USD exchange rates from an in-memory snapshot,
// refreshing through its fetcher once the snapshot is older than ttl.
type RateService struct {
	logger  *slog.Logger
	fetcher rates.Fetcher
	ttl     time.Duration

	mu       sync.RWMutex
	snapshot *rates.Snapshot
}

type RateOption func(*RateService)

func WithRatesLogger(l *slog.Logger) RateOption {
	return func(s *RateService) {
		s.logger = l
	}
}

func WithRatesFetcher(f rates.Fetcher) RateOption {
	return func(s *RateService) {
		s.fetcher = f
	}
}

func WithRatesTTL(d time.Duration) RateOption {
	return func(s *RateService) {
		s.ttl = d
	}
}

func (s *RateService) IsValid() error {
	switch {
	case s.logger == nil:
		return errors.Wrap(ErrInvalidRateServiceConfig, "logger cannot be nil")
	case s.fetcher == nil:
		return errors.Wrap(ErrInvalidRateServiceConfig, "fetcher cannot be nil")
	case s.ttl <= 0:
		return errors.Wrap(ErrInvalidRateServiceConfig, "ttl must be positive")
	default:
		return nil
	}
}

func NewRateService(opts ...RateOption) (*RateService, error) {
	s := &RateService{
		ttl: DefaultTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}

	return s, nil
}

// Rates returns the cached rate map when the snapshot is fresh, otherwise
// fetches a new one. A failed fetch leaves the previous snapshot in place;
// the next call retries. Concurrent refreshes may race; the snapshot is
// replaced wholesale, so the last write wins without corruption.
func (s *RateService) Rates() (map[string]decimal.Decimal, error) {
	if cached, ok := s.cached(); ok {
		return cached, nil
	}

	fetched, err := s.fetcher.Fetch()
	if err != nil {
		s.logger.Error("rate fetch failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = &rates.Snapshot{
		FetchedAt: time.Now(),
		Rates:     fetched,
	}
	s.mu.Unlock()

	s.logger.Debug("refreshed rate snapshot", "count", len(fetched))
	return fetched, nil
}

func (s *RateService) cached() (map[string]decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.snapshot.Fresh(time.Now(), s.ttl) {
		return nil, false
	}
	return s.snapshot.Rates, true
}
