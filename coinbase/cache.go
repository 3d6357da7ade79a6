package coinbase

import (
	"civic-sync"
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"sync"
	"time"
)

// cachingService decorates a coinbase.Service with a cache of exchange rates.
// It is concurrency safe. The first lookup of a currency seeds the cache and starts a
// refresh loop for it that lives as long as the context given to NewCachingService.
type cachingService struct {
	// ctx lifetime of the refresh loops
	ctx context.Context

	// next the service being decorated with a cache
	next Service

	// entries cached rates by base currency
	entries map[civic.Currency]civic.Rates

	// updateFrequency how often to refresh cached values
	updateFrequency time.Duration

	// lock synchronizes access to entries
	lock sync.RWMutex

	logger log.Logger
}

// NewCachingService returns a new caching Service. Cached currencies are evicted once ctx
// is done.
func NewCachingService(ctx context.Context, updateFrequency time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		ctx:             ctx,
		next:            s,
		entries:         map[civic.Currency]civic.Rates{},
		updateFrequency: updateFrequency,
		logger:          logger,
	}
}

// ExchangeRates returns cached rates, seeding the cache on first use.
func (s *cachingService) ExchangeRates(ctx context.Context, currency civic.Currency) (civic.Rates, error) {
	s.lock.RLock()
	rates, ok := s.entries[currency]
	s.lock.RUnlock()
	if ok {
		return rates, nil
	}

	// Concurrent misses for the same currency may both reach next. store reports which
	// caller won so that only one refresh loop is started.
	rates, err := s.next.ExchangeRates(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("seeding cache [%v]: %w", currency, err)
	}
	if first := s.store(currency, rates); first {
		go s.refresh(currency)
	}
	return rates, nil
}

// store records rates and reports whether currency was not cached before.
func (s *cachingService) store(currency civic.Currency, rates civic.Rates) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.entries[currency]
	s.entries[currency] = rates
	return !ok
}

// refresh keeps currency up to date until s.ctx is done, then evicts it.
func (s *cachingService) refresh(currency civic.Currency) {
	ticker := time.NewTicker(s.updateFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rates, err := s.next.ExchangeRates(s.ctx, currency)
			if err != nil {
				// keep serving the last known rates
				level.Warn(s.logger).Log("msg", "periodic refresh failed", "currency", currency, "err", err)
				continue
			}
			s.store(currency, rates)
		case <-s.ctx.Done():
			s.evict(currency)
			return
		}
	}
}

func (s *cachingService) evict(currency civic.Currency) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, currency)
}
