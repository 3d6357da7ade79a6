package conversion

import (
	"civic-sync"
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

const rate = 2500000

type call struct {
	amount civic.Amount
	from   civic.Currency
}

// mock converts at a fixed rate. Conversions of amounts listed in hold block until
// released, ignoring cancellation, to simulate responses that arrive late.
type mock struct {
	lock    sync.Mutex
	calls   []call
	hold    map[civic.Amount]chan struct{}
	started chan civic.Amount
	err     error
}

func newMock() *mock {
	return &mock{
		hold:    map[civic.Amount]chan struct{}{},
		started: make(chan civic.Amount, 16),
	}
}

func (m *mock) QuickConvertEthToNgn(_ context.Context, amount civic.Amount) (civic.Amount, error) {
	if err := m.record(amount, civic.ETH); err != nil {
		return 0, err
	}
	return amount * rate, nil
}

func (m *mock) QuickConvertNgnToEth(_ context.Context, amount civic.Amount) (civic.Amount, error) {
	if err := m.record(amount, civic.NGN); err != nil {
		return 0, err
	}
	return amount / rate, nil
}

func (m *mock) record(amount civic.Amount, from civic.Currency) error {
	m.lock.Lock()
	m.calls = append(m.calls, call{amount, from})
	release := m.hold[amount]
	err := m.err
	m.lock.Unlock()

	m.started <- amount
	if release != nil {
		<-release
	}
	return err
}

func (m *mock) holdAmount(amount civic.Amount) chan struct{} {
	m.lock.Lock()
	defer m.lock.Unlock()
	release := make(chan struct{})
	m.hold[amount] = release
	return release
}

func (m *mock) callCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.calls)
}

func (m *mock) lastCall() call {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls[len(m.calls)-1]
}

func converted(p *Pipeline) *civic.Amount {
	return p.State().Converted
}

func TestConvert(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	got, err := Convert(ctx, m, 2, civic.ETH)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, civic.Amount(5000000), *got)

	for _, amount := range []civic.Amount{0, -1} {
		got, err := Convert(ctx, m, amount, civic.NGN)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 1, m.callCount())
}

func TestConvert_RoundTrip(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	for _, a := range []civic.Amount{0.001, 0.02, 1, 42.5} {
		ngn, err := Convert(ctx, m, a, civic.ETH)
		require.NoError(t, err)
		eth, err := Convert(ctx, m, *ngn, civic.NGN)
		require.NoError(t, err)
		assert.InEpsilon(t, float64(a), float64(*eth), 1e-9)
	}
}

func TestPipeline_DebounceCoalesces(t *testing.T) {
	m := newMock()
	p := NewInput(m, log.NewNopLogger(), WithDelay(30*time.Millisecond))
	defer p.Stop()

	for _, amount := range []civic.Amount{1, 1.5, 2, 2.5, 3} {
		p.Set(context.Background(), amount, civic.ETH)
	}

	assert.Eventually(t, func() bool { return converted(p) != nil }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 1, m.callCount())
	assert.Equal(t, call{3, civic.ETH}, m.lastCall())
	assert.Equal(t, civic.Amount(3*rate), *converted(p))
}

func TestPipeline_StaleResponseDiscarded(t *testing.T) {
	m := newMock()
	release := m.holdAmount(1)
	d := NewDisplay(m, log.NewNopLogger())
	defer d.Stop()
	ctx := context.Background()

	first := d.Set(ctx, 1, civic.ETH)
	require.Equal(t, civic.Amount(1), <-m.started)

	second := d.Set(ctx, 2, civic.ETH)
	require.Equal(t, civic.Amount(2), <-m.started)
	assert.Greater(t, second.Seq(), first.Seq())

	assert.Eventually(t, func() bool {
		c := converted(d.Pipeline)
		return c != nil && *c == 2*rate
	}, time.Second, time.Millisecond)

	close(release)

	assert.Never(t, func() bool {
		c := converted(d.Pipeline)
		return c == nil || *c != 2*rate
	}, 50*time.Millisecond, 5*time.Millisecond)
	assert.False(t, d.State().Loading)
}

func TestPipeline_SourceChangeDropsDerivedValue(t *testing.T) {
	m := newMock()
	p := NewInput(m, log.NewNopLogger(), WithDelay(30*time.Millisecond))
	defer p.Stop()
	ctx := context.Background()

	p.Set(ctx, 1, civic.ETH)
	assert.Eventually(t, func() bool { return converted(p) != nil }, time.Second, time.Millisecond)

	// same source keeps the previous value while the new request is pending
	p.Set(ctx, 2, civic.ETH)
	require.NotNil(t, converted(p))
	assert.Equal(t, "≈ ₦2,500,000", p.State().Hint())

	p.Set(ctx, 1000, civic.NGN)
	s := p.State()
	assert.Nil(t, s.Converted)
	assert.Equal(t, "", s.Hint())
	eth, ngn := s.Pair()
	assert.Nil(t, eth)
	require.NotNil(t, ngn)
	assert.Equal(t, civic.Amount(1000), *ngn)

	assert.Eventually(t, func() bool {
		c := converted(p)
		return c != nil && *c == 1000.0/rate
	}, time.Second, time.Millisecond)
}

func TestPipeline_NonPositiveAmountClears(t *testing.T) {
	m := newMock()
	release := m.holdAmount(4)
	p := New(m, 0, log.NewNopLogger())
	defer p.Stop()
	ctx := context.Background()

	p.Set(ctx, 4, civic.NGN)
	<-m.started

	token := p.Set(ctx, 0, civic.NGN)
	assert.False(t, token.Valid())
	close(release)

	assert.Never(t, func() bool { return converted(p) != nil }, 50*time.Millisecond, 5*time.Millisecond)
	assert.False(t, p.State().Loading)
	assert.Equal(t, 1, m.callCount())
}

func TestPipeline_FailureClearsDerivedValue(t *testing.T) {
	m := newMock()
	p := New(m, 0, log.NewNopLogger())
	defer p.Stop()
	ctx := context.Background()

	p.Set(ctx, 1, civic.ETH)
	<-m.started
	assert.Eventually(t, func() bool { return converted(p) != nil }, time.Second, time.Millisecond)

	m.lock.Lock()
	m.err = errors.New("rate service down")
	m.lock.Unlock()

	p.Set(ctx, 2, civic.ETH)
	<-m.started
	assert.Eventually(t, func() bool {
		s := p.State()
		return s.Converted == nil && !s.Loading
	}, time.Second, time.Millisecond)

	// no automatic retry
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, m.callCount())
}

func TestPipeline_StopPreventsUpdates(t *testing.T) {
	m := newMock()
	var lock sync.Mutex
	var seen []State
	p := New(m, 20*time.Millisecond, log.NewNopLogger(), WithObserver(func(s State) {
		lock.Lock()
		seen = append(seen, s)
		lock.Unlock()
	}))

	p.Set(context.Background(), 1, civic.ETH)
	p.Stop()

	lock.Lock()
	before := len(seen)
	lock.Unlock()

	token := p.Set(context.Background(), 2, civic.ETH)
	assert.False(t, token.Valid())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, m.callCount())
	assert.Nil(t, converted(p))

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, before, len(seen))
}

func TestPipeline_ObserverSeesResult(t *testing.T) {
	m := newMock()
	results := make(chan State, 8)
	p := New(m, 0, log.NewNopLogger(), WithObserver(func(s State) { results <- s }))
	defer p.Stop()

	p.Set(context.Background(), 50000000, civic.NGN)

	timeout := time.After(time.Second)
	for {
		select {
		case s := <-results:
			if s.Converted != nil {
				assert.Equal(t, civic.Amount(20), *s.Converted)
				assert.Equal(t, civic.ETH, s.Target())
				assert.False(t, s.Loading)
				return
			}
		case <-timeout:
			t.Fatal("observer never saw a converted value")
		}
	}
}

func TestState_Hint(t *testing.T) {
	twenty := civic.Amount(20)
	naira := civic.Amount(1000000)

	assert.Equal(t, "", State{Amount: 1, Source: civic.ETH}.Hint())
	assert.Equal(t, "≈ 20.000000 ETH", State{Amount: 50000000, Source: civic.NGN, Converted: &twenty}.Hint())
	assert.Equal(t, "≈ ₦1,000,000", State{Amount: 0.4, Source: civic.ETH, Converted: &naira}.Hint())
}
