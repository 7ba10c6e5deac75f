package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"coincompare/pkg/types/rates"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockFetcher struct {
	calls int
	rates map[string]decimal.Decimal
	err   error
}

func (m *mockFetcher) Fetch() (map[string]decimal.Decimal, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rates, nil
}

func testRates(t *testing.T) map[string]decimal.Decimal {
	t.Helper()
	btc, err := decimal.NewFromString("0.00002")
	require.NoError(t, err)
	usdc, err := decimal.NewFromString("1.00013")
	require.NoError(t, err)
	return map[string]decimal.Decimal{"BTC": btc, "USDC": usdc}
}

func TestRateService_InvalidConfig(t *testing.T) {
	fetcher := &mockFetcher{}

	tests := []struct {
		name string
		opts []RateOption
	}{
		{"no logger", []RateOption{
			WithRatesFetcher(fetcher),
		}},
		{"no fetcher", []RateOption{
			WithRatesLogger(discardLogger),
		}},
		{"non-positive ttl", []RateOption{
			WithRatesLogger(discardLogger),
			WithRatesFetcher(fetcher),
			WithRatesTTL(0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRateService(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRateServiceConfig)
		})
	}
}

func TestRateService_FetchesOnFirstCall(t *testing.T) {
	fetcher := &mockFetcher{rates: testRates(t)}
	svc, err := NewRateService(
		WithRatesLogger(discardLogger),
		WithRatesFetcher(fetcher),
	)
	require.NoError(t, err)

	rateMap, err := svc.Rates()
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "0.00002", rateMap["BTC"].String())
}

func TestRateService_ServesFreshSnapshotWithoutRefetch(t *testing.T) {
	fetcher := &mockFetcher{rates: testRates(t)}
	svc, err := NewRateService(
		WithRatesLogger(discardLogger),
		WithRatesFetcher(fetcher),
		WithRatesTTL(time.Hour),
	)
	require.NoError(t, err)

	first, err := svc.Rates()
	require.NoError(t, err)
	second, err := svc.Rates()
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, first, second)
}

func TestRateService_RefetchesWhenStale(t *testing.T) {
	fetcher := &mockFetcher{rates: testRates(t)}
	svc, err := NewRateService(
		WithRatesLogger(discardLogger),
		WithRatesFetcher(fetcher),
		WithRatesTTL(time.Nanosecond),
	)
	require.NoError(t, err)

	_, err = svc.Rates()
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.Rates()
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.calls)
}

func TestRateService_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.Wrap(rates.ErrRateFetch, "unexpected status code: 502")
	fetcher := &mockFetcher{err: fetchErr}
	svc, err := NewRateService(
		WithRatesLogger(discardLogger),
		WithRatesFetcher(fetcher),
	)
	require.NoError(t, err)

	_, err = svc.Rates()
	require.Error(t, err)
	assert.ErrorIs(t, err, rates.ErrRateFetch)
}

func TestRateService_RetriesAfterFailedFetch(t *testing.T) {
	fetcher := &mockFetcher{err: rates.ErrRateFetch}
	svc, err := NewRateService(
		WithRatesLogger(discardLogger),
		WithRatesFetcher(fetcher),
		WithRatesTTL(time.Hour),
	)
	require.NoError(t, err)

	_, err = svc.Rates()
	require.Error(t, err)

	// No cached failure state: the next call fetches again and succeeds.
	fetcher.err = nil
	fetcher.rates = testRates(t)

	rateMap, err := svc.Rates()
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
	assert.Contains(t, rateMap, "BTC")
}
