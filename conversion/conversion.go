// Package conversion keeps a derived ETH/NGN amount in step with a changing source amount.
//
// A Pipeline owns one source amount. Every change issues a new request sequence number and
// the conversion result is applied only while that request is still the latest one, so a
// slow response for an old input can never overwrite a newer value. Input pipelines wait
// for typing to settle before converting; display pipelines convert immediately.
package conversion

import (
	"civic-sync"
	"civic-sync/currency"
	"civic-sync/debounce"
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"sync"
	"time"
)

// InputDelay quiet period before a typed amount is converted.
const InputDelay = 500 * time.Millisecond

// Convert resolves amount into the other currency. Amounts that are not strictly positive
// yield nil without calling s.
func Convert(ctx context.Context, s currency.Service, amount civic.Amount, source civic.Currency) (*civic.Amount, error) {
	if amount <= 0 {
		return nil, nil
	}
	converted, err := currency.Convert(ctx, s, amount, source)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// State snapshot of a Pipeline
type State struct {
	// Amount the source of truth
	Amount civic.Amount `json:"amount"`
	// Source currency of Amount
	Source civic.Currency `json:"currency"`
	// Converted derived amount in the other currency, nil when unavailable
	Converted *civic.Amount `json:"converted"`
	// Loading is set while a conversion for the latest request is in flight
	Loading bool `json:"loading"`
	// Seq request sequence number of the latest request
	Seq uint64 `json:"seq"`
}

// Target currency of the derived amount.
func (s State) Target() civic.Currency {
	return s.Source.Other()
}

// Pair splits the state into its ETH and NGN amounts. Either may be nil.
func (s State) Pair() (eth, ngn *civic.Amount) {
	var source *civic.Amount
	if s.Amount > 0 {
		amount := s.Amount
		source = &amount
	}
	if s.Source == civic.ETH {
		return source, s.Converted
	}
	return s.Converted, source
}

// Hint renders the derived amount as shown under an amount field, or "" when there is none.
func (s State) Hint() string {
	if s.Converted == nil {
		return ""
	}
	return "≈ " + currency.Format(civic.MonetaryAmount{Value: *s.Converted, Currency: s.Target()})
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithDelay overrides the quiet period.
func WithDelay(delay time.Duration) Option {
	return func(p *Pipeline) {
		p.debouncer = debounce.New(delay)
	}
}

// WithObserver registers fn to receive a snapshot after every state change. fn is called
// sequentially and must not call back into the Pipeline's mutating methods.
func WithObserver(fn func(State)) Option {
	return func(p *Pipeline) {
		p.observer = fn
	}
}

// Pipeline converts the latest source amount, discarding results for superseded input.
type Pipeline struct {
	service   currency.Service
	debouncer *debounce.Debouncer
	logger    log.Logger
	observer  func(State)

	// lock guards state; token checks happen under it so check and apply are atomic
	lock  sync.RWMutex
	state State

	// emitLock serialises observer calls
	emitLock sync.Mutex
}

// New constructs a valid Pipeline with the given quiet period.
func New(s currency.Service, delay time.Duration, logger log.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		service:   s,
		debouncer: debounce.New(delay),
		logger:    logger,
		state:     State{Source: civic.ETH},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewInput constructs a Pipeline for a free-typed amount field.
func NewInput(s currency.Service, logger log.Logger, opts ...Option) *Pipeline {
	return New(s, InputDelay, logger, opts...)
}

// State returns a snapshot of the current state.
func (p *Pipeline) State() State {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.state
}

// Set makes amount the current input and schedules its conversion. The returned token is
// invalid when no conversion was scheduled, either because amount is not positive or
// because the Pipeline has been stopped.
func (p *Pipeline) Set(ctx context.Context, amount civic.Amount, source civic.Currency) debounce.Token {
	p.lock.Lock()
	if p.debouncer.Stopped() {
		p.lock.Unlock()
		return debounce.Token{}
	}

	// a derived value for the other source would be shown under the wrong currency
	if source != p.state.Source {
		p.state.Converted = nil
	}
	p.state.Amount = amount
	p.state.Source = source

	var token debounce.Token
	if amount <= 0 {
		p.debouncer.Cancel()
		p.state.Converted = nil
		p.state.Loading = false
	} else {
		token = p.debouncer.Trigger(ctx, p.resolve(amount, source))
		p.state.Seq = token.Seq()
	}
	p.lock.Unlock()

	p.emit()
	return token
}

// Stop tears the Pipeline down. Pending and in-flight conversions are dropped and the
// observer is not called again.
func (p *Pipeline) Stop() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.debouncer.Stop()
	p.state.Loading = false
}

func (p *Pipeline) resolve(amount civic.Amount, source civic.Currency) debounce.Func {
	return func(ctx context.Context, token debounce.Token) {
		if !p.update(token, func(s *State) { s.Loading = true }) {
			return
		}

		converted, err := Convert(ctx, p.service, amount, source)

		applied := p.update(token, func(s *State) {
			s.Loading = false
			s.Converted = converted
		})
		if applied && err != nil {
			level.Warn(p.logger).Log("msg", "conversion failed", "amount", amount, "from", source, "seq", token.Seq(), "err", err)
		}
	}
}

// update applies fn and notifies the observer only if token is still current. Results
// for superseded tokens are dropped without a trace.
func (p *Pipeline) update(token debounce.Token, fn func(*State)) bool {
	p.lock.Lock()
	if !token.Valid() {
		p.lock.Unlock()
		return false
	}
	fn(&p.state)
	p.lock.Unlock()

	p.emit()
	return true
}

func (p *Pipeline) emit() {
	if p.observer == nil {
		return
	}
	p.emitLock.Lock()
	defer p.emitLock.Unlock()
	if p.debouncer.Stopped() {
		return
	}
	p.observer(p.State())
}
