package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooRateSource fetches daily close prices from the Yahoo Finance chart
// API, the same feed the original dashboard consumed for EURBRL=X.
type YahooRateSource struct {
	baseURL string
	client  *http.Client
}

// YahooOption is a functional option for configuring the rate source.
type YahooOption func(*YahooRateSource)

// WithBaseURL points the client at a different endpoint. Tests use it to
// target an httptest server.
func WithBaseURL(baseURL string) YahooOption {
	return func(s *YahooRateSource) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) YahooOption {
	return func(s *YahooRateSource) {
		s.client = client
	}
}

// NewYahooRateSource creates a Yahoo Finance backed rate source.
func NewYahooRateSource(options ...YahooOption) *YahooRateSource {
	s := &YahooRateSource{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portsrepo.RateSource = (*YahooRateSource)(nil)

// chartResponse mirrors the slice of the chart API payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyRate returns the most recent close price for the pair on or
// before the given day. The pair is a plain currency pair such as "EURBRL";
// Yahoo symbols carry an "=X" suffix.
func (s *YahooRateSource) FetchDailyRate(ctx context.Context, pair string, day time.Time) (decimal.Decimal, error) {
	symbol := pair + "=X"
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", s.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request for %s: %w", symbol, err)
	}
	// Yahoo rejects requests without a browser-ish user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; my-finance-api)")

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate request for %s returned status %d", symbol, resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response for %s: %w", symbol, err)
	}
	if payload.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("rate source error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return decimal.Zero, fmt.Errorf("no rate data for %s", symbol)
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	cutoff := day.AddDate(0, 0, 1) // strictly before the next day

	// Walk backwards for the newest non-null close on or before the day.
	for i := len(result.Timestamp) - 1; i >= 0; i-- {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		if time.Unix(result.Timestamp[i], 0).UTC().Before(cutoff) {
			return decimal.NewFromFloat(*closes[i]), nil
		}
	}

	return decimal.Zero, fmt.Errorf("no close price for %s on or before %s", symbol, day.Format("2006-01-02"))
}
