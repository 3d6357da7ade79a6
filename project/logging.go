package project

import (
	"civic-sync"
	"context"
	"github.com/go-kit/log"
	"time"
)

// loggingService decorates a project.Service with logging
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

func (s *loggingService) GetAllProjects(ctx context.Context) (listing Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "get_all_projects",
			"projects", len(listing.Projects),
			"exchange_rate", listing.ExchangeRate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetAllProjects(ctx)
}

func (s *loggingService) TransformProject(raw civic.RawProject) civic.Project {
	return s.next.TransformProject(raw)
}
