package handler

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"coincompare/pkg/amounts"
	"coincompare/pkg/types/rates"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DefaultSymbols are the assets preselected on the form. They must be
// symbols the Coinbase rates API reports.
var DefaultSymbols = []string{
	"BTC",
	"ETH",
	"SOL",
	"USDC",
	"USDT",
	"XRP",
	"ADA",
	"DOGE",
	"LTC",
}

const invalidPriceMessage = "Please enter a valid non-negative USD price."

type CompareHandler struct {
	renderer *Renderer
	rates    rates.Provider
	logger   *slog.Logger
}

func NewCompareHandler(renderer *Renderer, provider rates.Provider, logger *slog.Logger) *CompareHandler {
	return &CompareHandler{
		renderer: renderer,
		rates:    provider,
		logger:   logger,
	}
}

type CompareRow struct {
	Symbol     string
	USDRate    string
	ItemAmount string
}

type ComparePageData struct {
	Title           string
	Error           string
	Item            string
	Price           string
	AllSymbols      []string
	SelectedSymbols []string
	Results         []CompareRow
}

func (h *CompareHandler) Index(c *gin.Context) {
	data := ComparePageData{
		Title:           "USD ↔ Crypto Price Comparator",
		AllSymbols:      DefaultSymbols,
		SelectedSymbols: DefaultSymbols,
	}
	h.renderer.HTML(c, http.StatusOK, "compare", data)
}

func (h *CompareHandler) Submit(c *gin.Context) {
	item := strings.TrimSpace(c.PostForm("item"))
	priceStr := strings.TrimSpace(c.PostForm("price"))

	selected := DefaultSymbols
	if provided := c.PostFormArray("cryptos"); len(provided) > 0 {
		selected = make([]string, len(provided))
		for i, s := range provided {
			selected[i] = strings.ToUpper(s)
		}
	}

	data := ComparePageData{
		Title:           "USD ↔ Crypto Price Comparator",
		Item:            item,
		Price:           priceStr,
		AllSymbols:      DefaultSymbols,
		SelectedSymbols: selected,
	}

	usdPrice, err := decimal.NewFromString(priceStr)
	if err != nil || usdPrice.IsNegative() {
		data.Error = invalidPriceMessage
		h.renderer.HTML(c, http.StatusOK, "compare", data)
		return
	}

	rateMap, err := h.rates.Rates()
	if err != nil {
		h.logger.Error("rate lookup failed", "error", err)
		data.Error = "Failed to fetch live rates: " + err.Error()
		h.renderer.HTML(c, http.StatusOK, "compare", data)
		return
	}

	// Symbols missing from the rate map are skipped, not reported.
	for _, symbol := range selected {
		rate, ok := rateMap[symbol]
		if !ok {
			continue
		}
		amount := usdPrice.Mul(rate)
		data.Results = append(data.Results, CompareRow{
			Symbol:     symbol,
			USDRate:    amounts.Format(symbol, rate),
			ItemAmount: amounts.Format(symbol, amount),
		})
	}

	sort.Slice(data.Results, func(i, j int) bool {
		return data.Results[i].Symbol < data.Results[j].Symbol
	})

	h.renderer.HTML(c, http.StatusOK, "compare", data)
}
