package project

import (
	"civic-sync"
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"sync"
)

// AdvisoryDemoData is shown when the backend could not be reached and demo data is in use.
const AdvisoryDemoData = "Failed to load projects from server. Using demo data."

// FilterUpdate partial change to the filters. Nil fields are left as they are.
type FilterUpdate struct {
	Status *civic.StatusFilter
	Search *string
}

// Store holds the session's project collection and the view state derived from it.
// The collection is never empty: it starts as, and falls back to, the demo collection.
type Store struct {
	service Service
	logger  log.Logger

	// lock guards everything below
	lock     sync.RWMutex
	projects []civic.Project
	filters  civic.ProjectFilters
	selected *civic.Project
	loading  bool
	advisory string
	rate     civic.Rate
	hasRate  bool

	// seq of the most recently started fetch; older fetches do not apply their result
	seq uint64
}

// NewStore constructs a valid Store showing the demo collection.
func NewStore(s Service, logger log.Logger) *Store {
	return &Store{
		service:  s,
		logger:   logger,
		projects: Demo(),
		filters:  civic.ProjectFilters{Status: civic.StatusAll},
	}
}

// Fetch replaces the collection with the backend's. An empty result falls back to the demo
// collection. On failure the demo collection is used, an advisory is set and the last known
// exchange rate is kept; the error is returned for the caller's information only. A fetch
// cancelled through ctx leaves the collection as it was. Calling Fetch again always replaces
// state wholesale.
func (s *Store) Fetch(ctx context.Context) error {
	s.lock.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	advisory := s.advisory
	s.advisory = ""
	s.lock.Unlock()

	listing, err := s.service.GetAllProjects(ctx)

	var projects []civic.Project
	if err == nil {
		projects = make([]civic.Project, 0, len(listing.Projects))
		for _, raw := range listing.Projects {
			projects = append(projects, s.service.TransformProject(raw))
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if seq != s.seq {
		return nil
	}
	s.loading = false

	// an abandoned fetch says nothing about the backend; keep what is shown
	if errors.Is(err, context.Canceled) {
		s.advisory = advisory
		return fmt.Errorf("fetch projects: %w", err)
	}
	if err != nil {
		level.Warn(s.logger).Log("msg", "failed to fetch projects, using demo data", "err", err)
		s.projects = Demo()
		s.advisory = AdvisoryDemoData
		return fmt.Errorf("fetch projects: %w", err)
	}

	if len(projects) == 0 {
		projects = Demo()
	}
	s.projects = projects
	s.rate = listing.ExchangeRate
	s.hasRate = true
	return nil
}

// Projects returns the filtered view of the collection.
func (s *Store) Projects() []civic.Project {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Filter(s.projects, s.filters)
}

// AllProjects returns the whole collection.
func (s *Store) AllProjects() []civic.Project {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return append([]civic.Project(nil), s.projects...)
}

// Filters returns the current filters.
func (s *Store) Filters() civic.ProjectFilters {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.filters
}

// UpdateFilters merges u into the current filters.
func (s *Store) UpdateFilters(u FilterUpdate) civic.ProjectFilters {
	s.lock.Lock()
	defer s.lock.Unlock()
	if u.Status != nil {
		s.filters.Status = *u.Status
	}
	if u.Search != nil {
		s.filters.Search = *u.Search
	}
	return s.filters
}

// Select makes p the selected project; nil clears the selection. Selection is independent
// of the filters, so p need not be in the filtered view.
func (s *Store) Select(p *civic.Project) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if p == nil {
		s.selected = nil
		return
	}
	selected := *p
	s.selected = &selected
}

// Selected returns the selected project, if any.
func (s *Store) Selected() (civic.Project, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.selected == nil {
		return civic.Project{}, false
	}
	return *s.selected, true
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.loading
}

// Advisory returns the degraded-mode message, if one applies.
func (s *Store) Advisory() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.advisory, s.advisory != ""
}

// ExchangeRate returns the rate delivered with the last successful fetch.
func (s *Store) ExchangeRate() (civic.Rate, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.rate, s.hasRate
}
