package location

import (
	"civic-sync"
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sync"
	"testing"
	"time"
)

type mockResolver struct {
	lock    sync.Mutex
	queries []string
	err     error
	dataset *Dataset
}

func (m *mockResolver) Search(ctx context.Context, query string) ([]civic.SearchResult, error) {
	m.lock.Lock()
	m.queries = append(m.queries, query)
	err := m.err
	m.lock.Unlock()
	if err != nil {
		return nil, err
	}
	return m.dataset.Search(ctx, query)
}

func (m *mockResolver) seen() []string {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]string(nil), m.queries...)
}

func newBox(m *mockResolver, opts ...BoxOption) *Box {
	m.dataset = newDataset()
	opts = append([]BoxOption{WithSearchDelay(20 * time.Millisecond)}, opts...)
	return NewBox(m, rand.New(rand.NewSource(1)), log.NewNopLogger(), opts...)
}

func TestBox_DebouncedSearch(t *testing.T) {
	var m mockResolver
	b := newBox(&m)
	defer b.Close()
	ctx := context.Background()

	for _, q := range []string{"i", "ib", "iba", "ibad"} {
		b.SetQuery(ctx, q)
	}

	assert.Eventually(t, func() bool { return b.State().Visible() }, time.Second, time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, []string{"ibad"}, m.seen())
	s := b.State()
	assert.Equal(t, "ibad", s.Query)
	assert.Equal(t, []string{"ibadan"}, placeIDs(s.Results))
	assert.False(t, s.Loading)
}

func TestBox_ShortQueryClearsWithoutSearching(t *testing.T) {
	var m mockResolver
	b := newBox(&m)
	defer b.Close()
	ctx := context.Background()

	b.SetQuery(ctx, "warri")
	assert.Eventually(t, func() bool { return b.State().Visible() }, time.Second, time.Millisecond)

	b.SetQuery(ctx, "ww")
	token := b.SetQuery(ctx, "w")
	assert.False(t, token.Valid())

	s := b.State()
	assert.Empty(t, s.Results)
	assert.False(t, s.Open)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []string{"warri"}, m.seen())
	assert.Empty(t, b.State().Results)
}

func TestBox_SearchFailureYieldsNoResults(t *testing.T) {
	m := mockResolver{err: errors.New("geocoder down")}
	b := newBox(&m)
	defer b.Close()

	b.SetQuery(context.Background(), "enugu")

	assert.Eventually(t, func() bool { return len(m.seen()) == 1 }, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool {
		s := b.State()
		return !s.Loading && len(s.Results) == 0 && !s.Open
	}, time.Second, time.Millisecond)
}

func TestBox_Select(t *testing.T) {
	var m mockResolver
	b := newBox(&m)
	defer b.Close()

	b.SetQuery(context.Background(), "garki")
	assert.Eventually(t, func() bool { return b.State().Visible() }, time.Second, time.Millisecond)

	result := b.State().Results[0]
	sel := b.Select(result)

	assert.Equal(t, "Garki", sel.LocationName)
	assert.Equal(t, 9.0415, sel.Lat)
	assert.Equal(t, 7.4905, sel.Lon)
	assert.Equal(t, SuggestProjectTitle("Garki", rand.New(rand.NewSource(1))), sel.ProjectTitle)

	s := b.State()
	assert.Equal(t, "Garki", s.Query)
	assert.False(t, s.Open)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []string{"garki"}, m.seen())
}

func TestBox_PointerDismissal(t *testing.T) {
	var m mockResolver
	bounds := Rect{Min: Point{0, 0}, Max: Point{400, 300}}
	b := newBox(&m, WithBounds(bounds))
	defer b.Close()

	b.SetQuery(context.Background(), "owerri")
	assert.Eventually(t, func() bool { return b.State().Visible() }, time.Second, time.Millisecond)

	b.PointerDown(Point{100, 100})
	assert.True(t, b.State().Open)

	b.PointerDown(Point{500, 100})
	assert.False(t, b.State().Open)

	b.Focus()
	assert.True(t, b.State().Visible())

	b.SetBounds(Rect{Min: Point{600, 0}, Max: Point{700, 100}})
	b.PointerDown(Point{100, 100})
	assert.False(t, b.State().Open)
}

func TestBox_FocusWithoutResults(t *testing.T) {
	var m mockResolver
	b := newBox(&m)
	defer b.Close()

	b.Focus()
	assert.False(t, b.State().Open)
}

func TestBox_CloseDropsPendingSearch(t *testing.T) {
	var m mockResolver
	var lock sync.Mutex
	updates := 0
	b := newBox(&m, WithBoxObserver(func(BoxState) {
		lock.Lock()
		updates++
		lock.Unlock()
	}))

	b.SetQuery(context.Background(), "sokoto")
	b.Close()

	lock.Lock()
	before := updates
	lock.Unlock()

	token := b.SetQuery(context.Background(), "minna")
	require.False(t, token.Valid())

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, m.seen())
	assert.Empty(t, b.State().Results)

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, before, updates)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Min: Point{10, 10}, Max: Point{20, 20}}
	assert.True(t, r.Contains(Point{10, 10}))
	assert.True(t, r.Contains(Point{20, 15}))
	assert.False(t, r.Contains(Point{9.9, 15}))
	assert.False(t, r.Contains(Point{15, 21}))
}
