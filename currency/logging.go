package currency

import (
	"civic-sync"
	"context"
	"github.com/go-kit/log"
	"time"
)

// loggingService decorates a currency.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) QuickConvertEthToNgn(ctx context.Context, amount civic.Amount) (converted civic.Amount, err error) {
	defer func(begin time.Time) {
		s.log("eth_to_ngn", amount, converted, begin, err)
	}(time.Now())
	return s.next.QuickConvertEthToNgn(ctx, amount)
}

func (s *loggingService) QuickConvertNgnToEth(ctx context.Context, amount civic.Amount) (converted civic.Amount, err error) {
	defer func(begin time.Time) {
		s.log("ngn_to_eth", amount, converted, begin, err)
	}(time.Now())
	return s.next.QuickConvertNgnToEth(ctx, amount)
}

func (s *loggingService) log(method string, amount, converted civic.Amount, begin time.Time, err error) {
	s.logger.Log(
		"method", method,
		"amount", amount,
		"converted_amount", converted,
		"took", time.Since(begin),
		"err", err,
	)
}
