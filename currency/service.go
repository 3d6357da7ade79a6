package currency

import (
	"civic-sync"
	"civic-sync/coinbase"
	"context"
	"errors"
	"fmt"
)

// ErrRateUnavailable is returned when the rate source has no usable ETH/NGN rate.
var ErrRateUnavailable = errors.New("ETH/NGN rate unavailable")

// Service converts between ETH and NGN at the current exchange rate
type Service interface {
	QuickConvertEthToNgn(ctx context.Context, amount civic.Amount) (civic.Amount, error)
	QuickConvertNgnToEth(ctx context.Context, amount civic.Amount) (civic.Amount, error)
}

// service converts using the ETH quote of a rate source.
// Both directions use the same rate so a round trip only loses float precision.
type service struct {
	// rates source of ETH exchange rates
	rates coinbase.Service
}

// NewService constructs a valid Service
func NewService(rates coinbase.Service) Service {
	return &service{
		rates: rates,
	}
}

func (s *service) QuickConvertEthToNgn(ctx context.Context, amount civic.Amount) (civic.Amount, error) {
	rate, err := s.rate(ctx)
	if err != nil {
		return 0, fmt.Errorf("convert eth to ngn: %w", err)
	}
	return civic.Amount(float64(amount) * float64(rate)), nil
}

func (s *service) QuickConvertNgnToEth(ctx context.Context, amount civic.Amount) (civic.Amount, error) {
	rate, err := s.rate(ctx)
	if err != nil {
		return 0, fmt.Errorf("convert ngn to eth: %w", err)
	}
	return civic.Amount(float64(amount) / float64(rate)), nil
}

// rate NGN per ETH
func (s *service) rate(ctx context.Context) (civic.Rate, error) {
	rates, err := s.rates.ExchangeRates(ctx, civic.ETH)
	if err != nil {
		return 0, fmt.Errorf("lookup [%v]: %w", civic.ETH, err)
	}
	rate, ok := rates[civic.NGN]
	if !ok || rate <= 0 {
		return 0, ErrRateUnavailable
	}
	return rate, nil
}

// Convert converts amount out of from into the other currency.
func Convert(ctx context.Context, s Service, amount civic.Amount, from civic.Currency) (civic.Amount, error) {
	switch from {
	case civic.ETH:
		return s.QuickConvertEthToNgn(ctx, amount)
	case civic.NGN:
		return s.QuickConvertNgnToEth(ctx, amount)
	default:
		return 0, fmt.Errorf("unknown 'from' currency: %v", from)
	}
}
