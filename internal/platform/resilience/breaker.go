package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("circuit breaker is open")

type State int8

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half_open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// StateListener is called outside the breaker lock on every transition.
type StateListener func(name string, from, to State)

// Breaker guards one upstream dependency. After FailureThreshold consecutive failures it
// rejects calls for OpenTimeout, then admits up to HalfOpenMaxReq probes; that many probe
// successes close it again and any probe failure reopens it.
// A nil or disabled Breaker admits everything.
type Breaker struct {
	name     string
	cfg      BreakerConfig
	listener StateListener
	now      func() time.Time

	mu             sync.Mutex
	state          State
	failures       int
	openedAt       time.Time
	probesInFlight int
	probeSuccesses int
}

type BreakerOption func(*Breaker)

func WithStateListener(listener StateListener) BreakerOption {
	return func(b *Breaker) {
		b.listener = listener
	}
}

func NewBreaker(name string, cfg BreakerConfig, opts ...BreakerOption) *Breaker {
	b := &Breaker{
		name: name,
		cfg:  cfg.Normalize(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Acquire admits one call. The returned done func must be called exactly once with
// whether the call counts as a dependency failure.
func (b *Breaker) Acquire() (done func(failed bool), err error) {
	if b == nil || !b.cfg.Enabled {
		return func(bool) {}, nil
	}

	b.mu.Lock()
	from := b.state
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return nil, ErrBreakerOpen
		}
		b.setState(StateHalfOpen)
	}

	probe := b.state == StateHalfOpen
	if probe {
		if b.probesInFlight >= b.cfg.HalfOpenMaxReq {
			b.mu.Unlock()
			b.notify(from, StateHalfOpen)
			return nil, ErrBreakerOpen
		}
		b.probesInFlight++
	}
	to := b.state
	b.mu.Unlock()
	b.notify(from, to)

	var once sync.Once
	return func(failed bool) {
		once.Do(func() { b.record(probe, failed) })
	}, nil
}

func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) record(probe, failed bool) {
	b.mu.Lock()
	from := b.state
	if probe && b.probesInFlight > 0 {
		b.probesInFlight--
	}

	switch {
	case failed && b.state == StateHalfOpen:
		b.trip()
	case failed && b.state == StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case failed:
		b.openedAt = b.now()
	case b.state == StateHalfOpen && probe:
		b.probeSuccesses++
		if b.probeSuccesses >= b.cfg.HalfOpenMaxReq && b.probesInFlight == 0 {
			b.setState(StateClosed)
		}
	case b.state == StateClosed:
		b.failures = 0
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

func (b *Breaker) trip() {
	b.setState(StateOpen)
	b.openedAt = b.now()
}

func (b *Breaker) setState(state State) {
	b.state = state
	b.failures = 0
	b.probesInFlight = 0
	b.probeSuccesses = 0
	if state != StateOpen {
		b.openedAt = time.Time{}
	}
}

func (b *Breaker) notify(from, to State) {
	if from != to && b.listener != nil {
		b.listener(b.name, from, to)
	}
}
