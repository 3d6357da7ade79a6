// Package location resolves free-text queries against a reference dataset of named
// locations, synthesizing a plausible entry when nothing matches.
package location

import (
	"civic-sync"
	"context"
	"github.com/shopspring/decimal"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MinQueryLength shortest trimmed query that is resolved
	MinQueryLength = 2

	// MaxResults results returned per query
	MaxResults = 5

	// DefaultLatency artificial resolution delay of the in-memory dataset
	DefaultLatency = 300 * time.Millisecond
)

// Bounding box synthesized coordinates are drawn from.
const (
	minLat = 4.0
	minLon = 3.0
	span   = 10.0
)

// Resolver resolves a query to a list of locations
type Resolver interface {
	Search(ctx context.Context, query string) ([]civic.SearchResult, error)
}

// NormalizeQuery trims query and reports whether it is long enough to resolve.
func NormalizeQuery(query string) (string, bool) {
	q := strings.TrimSpace(query)
	return q, utf8.RuneCountInString(q) >= MinQueryLength
}

// Match returns up to limit entries whose display name contains query, ignoring case,
// in dataset order.
func Match(entries []civic.SearchResult, query string, limit int) []civic.SearchResult {
	q := strings.ToLower(query)
	var matches []civic.SearchResult
	for _, e := range entries {
		if len(matches) == limit {
			break
		}
		if strings.Contains(strings.ToLower(e.DisplayName), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Synthesize makes up a location for a query that matched nothing. Coordinates are drawn
// uniformly from a box covering Nigeria, so they are plausible rather than accurate.
func Synthesize(query string, rng *rand.Rand) civic.SearchResult {
	return civic.SearchResult{
		DisplayName: capitalize(query) + ", Nigeria",
		Lat:         round4(minLat + rng.Float64()*span),
		Lon:         round4(minLon + rng.Float64()*span),
		PlaceID:     "dynamic_" + strings.ToLower(query),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func round4(f float64) float64 {
	return decimal.NewFromFloat(f).Round(4).InexactFloat64()
}

// Dataset resolves queries from an in-memory list of locations. It never fails except
// when ctx is done before the artificial latency has passed.
type Dataset struct {
	entries []civic.SearchResult
	latency time.Duration

	// lock guards rng, which is not safe for concurrent use
	lock sync.Mutex
	rng  *rand.Rand
}

// NewDataset constructs a valid Dataset. entries are copied.
func NewDataset(entries []civic.SearchResult, latency time.Duration, rng *rand.Rand) *Dataset {
	return &Dataset{
		entries: append([]civic.SearchResult(nil), entries...),
		latency: latency,
		rng:     rng,
	}
}

// Search resolves query. Short queries yield no results; queries matching nothing yield a
// single synthesized result.
func (d *Dataset) Search(ctx context.Context, query string) ([]civic.SearchResult, error) {
	q, ok := NormalizeQuery(query)
	if !ok {
		return nil, nil
	}

	if d.latency > 0 {
		select {
		case <-time.After(d.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	results := Match(d.entries, q, MaxResults)
	if len(results) == 0 {
		d.lock.Lock()
		results = []civic.SearchResult{Synthesize(q, d.rng)}
		d.lock.Unlock()
	}
	return results, nil
}
