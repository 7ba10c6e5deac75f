package coinbaserates

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coincompare/pkg/types/rates"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var _ rates.Fetcher = (*RateFetcher)(nil)

type RateFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewRateFetcher() *RateFetcher {
	return &RateFetcher{
		BaseURL: "https://api.coinbase.com/v2",
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns 1 USD -> asset rates keyed by uppercase symbol.
// Entries whose value is not a valid decimal are skipped.
func (c *RateFetcher) Fetch() (map[string]decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/exchange-rates?currency=USD", c.BaseURL)

	resp, err := c.Client.Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(rates.ErrRateFetch, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(rates.ErrRateFetch, "unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Rates map[string]string `json:"rates"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(rates.ErrRateFetch, "failed to decode response: "+err.Error())
	}

	parsed := make(map[string]decimal.Decimal, len(result.Data.Rates))
	for symbol, value := range result.Data.Rates {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}
		parsed[strings.ToUpper(symbol)] = rate
	}

	return parsed, nil
}
