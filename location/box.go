package location

import (
	"civic-sync"
	"civic-sync/debounce"
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"math/rand"
	"sync"
	"time"
)

// SearchDelay quiet period after the last keystroke before a query is resolved.
const SearchDelay = 300 * time.Millisecond

// Point a pointer position
type Point struct {
	X, Y float64
}

// Rect a bounding region, edges included
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// BoxState snapshot of a Box
type BoxState struct {
	Query   string               `json:"query"`
	Results []civic.SearchResult `json:"results"`
	Open    bool                 `json:"open"`
	Loading bool                 `json:"loading"`
}

// Visible reports whether the result panel is shown.
func (s BoxState) Visible() bool {
	return s.Open && len(s.Results) > 0
}

// Selection what picking a result hands to the caller
type Selection struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	LocationName string  `json:"location_name"`
	ProjectTitle string  `json:"project_title"`
}

// BoxOption configures a Box
type BoxOption func(*Box)

// WithSearchDelay overrides the quiet period.
func WithSearchDelay(delay time.Duration) BoxOption {
	return func(b *Box) {
		b.debouncer = debounce.New(delay)
	}
}

// WithBoxObserver registers fn to receive a snapshot after every state change. fn must not
// call back into the Box's mutating methods.
func WithBoxObserver(fn func(BoxState)) BoxOption {
	return func(b *Box) {
		b.observer = fn
	}
}

// WithBounds sets the region outside of which a pointer press closes the panel.
func WithBounds(r Rect) BoxOption {
	return func(b *Box) {
		b.bounds = r
	}
}

// Box drives a location search field: it debounces keystrokes, resolves queries, tracks
// panel visibility and turns a picked result into a Selection.
type Box struct {
	resolver  Resolver
	debouncer *debounce.Debouncer
	logger    log.Logger
	observer  func(BoxState)

	// rngLock guards rng
	rngLock sync.Mutex
	rng     *rand.Rand

	// lock guards bounds and state
	lock   sync.RWMutex
	bounds Rect
	state  BoxState

	emitLock sync.Mutex
}

// NewBox constructs a valid Box. rng is used for project title suggestions.
func NewBox(resolver Resolver, rng *rand.Rand, logger log.Logger, opts ...BoxOption) *Box {
	b := &Box{
		resolver:  resolver,
		debouncer: debounce.New(SearchDelay),
		logger:    logger,
		rng:       rng,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns a snapshot of the current state.
func (b *Box) State() BoxState {
	b.lock.RLock()
	defer b.lock.RUnlock()
	s := b.state
	s.Results = append([]civic.SearchResult(nil), b.state.Results...)
	return s
}

// SetQuery records a keystroke. Queries too short to resolve clear the results at once;
// anything else is resolved after the quiet period unless another keystroke comes first.
func (b *Box) SetQuery(ctx context.Context, query string) debounce.Token {
	b.lock.Lock()
	if b.debouncer.Stopped() {
		b.lock.Unlock()
		return debounce.Token{}
	}

	b.state.Query = query
	q, ok := NormalizeQuery(query)

	var token debounce.Token
	if !ok {
		b.debouncer.Cancel()
		b.state.Results = nil
		b.state.Open = false
		b.state.Loading = false
	} else {
		token = b.debouncer.Trigger(ctx, b.resolve(q))
	}
	b.lock.Unlock()

	b.emit()
	return token
}

func (b *Box) resolve(query string) debounce.Func {
	return func(ctx context.Context, token debounce.Token) {
		if !b.update(token, func(s *BoxState) { s.Loading = true }) {
			return
		}

		results, err := b.resolver.Search(ctx, query)
		if err != nil {
			if !token.Valid() {
				return
			}
			level.Warn(b.logger).Log("msg", "location search failed", "query", query, "err", err)
			results = nil
		}

		b.update(token, func(s *BoxState) {
			s.Results = results
			s.Open = len(results) > 0
			s.Loading = false
		})
	}
}

// Select picks result. The query is replaced by the location name, the panel closes and a
// project title is suggested for the location.
func (b *Box) Select(result civic.SearchResult) Selection {
	name := LocationName(result.DisplayName)

	b.rngLock.Lock()
	title := SuggestProjectTitle(name, b.rng)
	b.rngLock.Unlock()

	b.lock.Lock()
	b.debouncer.Cancel()
	b.state.Query = name
	b.state.Open = false
	b.state.Loading = false
	b.lock.Unlock()

	b.emit()
	return Selection{
		Lat:          result.Lat,
		Lon:          result.Lon,
		LocationName: name,
		ProjectTitle: title,
	}
}

// Focus reopens the panel when there are results to show.
func (b *Box) Focus() {
	b.lock.Lock()
	changed := !b.state.Open && len(b.state.Results) > 0
	if changed {
		b.state.Open = true
	}
	b.lock.Unlock()

	if changed {
		b.emit()
	}
}

// SetBounds updates the region the Box occupies.
func (b *Box) SetBounds(r Rect) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.bounds = r
}

// PointerDown closes the panel when p falls outside the Box.
func (b *Box) PointerDown(p Point) {
	b.lock.Lock()
	changed := b.state.Open && !b.bounds.Contains(p)
	if changed {
		b.state.Open = false
	}
	b.lock.Unlock()

	if changed {
		b.emit()
	}
}

// Close tears the Box down. Pending searches are dropped and the observer is not called
// again.
func (b *Box) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.debouncer.Stop()
	b.state.Loading = false
}

func (b *Box) update(token debounce.Token, fn func(*BoxState)) bool {
	b.lock.Lock()
	if !token.Valid() {
		b.lock.Unlock()
		return false
	}
	fn(&b.state)
	b.lock.Unlock()

	b.emit()
	return true
}

func (b *Box) emit() {
	if b.observer == nil {
		return
	}
	b.emitLock.Lock()
	defer b.emitLock.Unlock()
	if b.debouncer.Stopped() {
		return
	}
	b.observer(b.State())
}
