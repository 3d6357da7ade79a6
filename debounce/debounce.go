// Package debounce coalesces bursts of input into a single delayed resolution and hands out
// explicit cancellation tokens so that late results can be recognised and dropped.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Func is invoked once the quiet period has elapsed. ctx is cancelled as soon as token is
// invalidated, so blocking calls made with it are abandoned when newer input arrives.
type Func func(ctx context.Context, token Token)

// Token identifies one scheduled resolution. It stays valid until the next Trigger, Cancel
// or Stop on the Debouncer that issued it.
type Token struct {
	seq uint64
	d   *Debouncer
}

// Seq the request sequence number of the token. Sequence numbers increase monotonically
// per Debouncer.
func (t Token) Seq() uint64 {
	return t.seq
}

// Valid reports whether the token still belongs to the most recent request.
func (t Token) Valid() bool {
	if t.d == nil {
		return false
	}
	return t.d.current(t.seq)
}

// Debouncer delays work until input has been quiet for a fixed period. A zero delay runs
// work immediately (on its own goroutine) while keeping the same token semantics.
type Debouncer struct {
	// delay quiet period before work is run
	delay time.Duration

	// lock guards everything below
	lock sync.Mutex

	// seq of the only token currently considered valid
	seq uint64

	// timer pending timer, nil when nothing is scheduled
	timer *time.Timer

	// cancel cancels the context handed to the current Func
	cancel context.CancelFunc

	// stopped is set by Stop and never cleared
	stopped bool
}

// New constructs a valid Debouncer.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger invalidates any outstanding token, cancels a pending timer and schedules fn.
// After Stop, Trigger does nothing and returns an invalid token.
func (d *Debouncer) Trigger(ctx context.Context, fn Func) Token {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.seq++
	d.releaseLocked()
	if d.stopped {
		return Token{}
	}

	token := Token{seq: d.seq, d: d}
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	run := func() {
		if !token.Valid() {
			return
		}
		fn(runCtx, token)
	}

	if d.delay <= 0 {
		go run()
	} else {
		d.timer = time.AfterFunc(d.delay, run)
	}
	return token
}

// Cancel invalidates the outstanding token and drops any pending timer. The Debouncer can
// be triggered again afterwards.
func (d *Debouncer) Cancel() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.seq++
	d.releaseLocked()
}

// Stop tears the Debouncer down. Outstanding tokens become invalid and later triggers are
// ignored.
func (d *Debouncer) Stop() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.stopped = true
	d.seq++
	d.releaseLocked()
}

// Stopped reports whether Stop has been called.
func (d *Debouncer) Stopped() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.stopped
}

func (d *Debouncer) current(seq uint64) bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return !d.stopped && seq == d.seq
}

// releaseLocked stops the pending timer and cancels the running Func's context.
func (d *Debouncer) releaseLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
