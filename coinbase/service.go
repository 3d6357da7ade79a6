package coinbase

import (
	"civic-sync"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const ApiUrlBase = "https://api.coinbase.com/v2"

// ErrUnexpectedStatus is returned when coinbase answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from coinbase")

// Service looks up exchange rates quoted against a base currency
type Service interface {
	ExchangeRates(ctx context.Context, currency civic.Currency) (civic.Rates, error)
}

// service coinbase REST API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid coinbase Service. An empty url selects ApiUrlBase.
func NewService(url string) Service {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// ExchangeRates loads the current rates for currency. Only the currencies this module
// converts between are kept; coinbase quotes every currency it knows about.
func (s *service) ExchangeRates(ctx context.Context, currency civic.Currency) (civic.Rates, error) {
	type Response struct {
		Data struct {
			Currency string
			Rates    map[string]string // maps currency codes to rates
		}
	}

	url := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, currency)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	if err := json.Unmarshal(bytes, &response); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := civic.Rates{}
	for k, v := range response.Data.Rates {
		to, ok := civic.ParseCurrency(k)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rate value for %v: %w", k, err)
		}
		rates[to] = civic.Rate(f)
	}

	return rates, nil
}
