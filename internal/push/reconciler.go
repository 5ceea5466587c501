package push

import (
	"context"
	"sync"
	"time"
)

// State describes the connection lifecycle. The reconciler loops
// Connecting → Open → Closed and back, indefinitely.
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

// String returns a short label for status displays.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Channel is one established message stream. Implementations must unblock
// ReadMessage with an error when the underlying transport drops.
type Channel interface {
	ReadMessage() ([]byte, error)
	Close() error
}

// Factory dials a fresh channel. Injected so tests can run the machine
// without sockets.
type Factory func(ctx context.Context, url string) (Channel, error)

// DefaultRetryDelay is the fixed, non-exponential reconnect backoff.
const DefaultRetryDelay = 2 * time.Second

// Reconciler owns the push connection and forwards parsed events to a sink.
type Reconciler struct {
	url        string
	dial       Factory
	retryDelay time.Duration
	sink       func(Event)
	onState    func(State)
	logf       func(format string, args ...any)

	mu    sync.Mutex
	state State
}

// Config wires a Reconciler.
type Config struct {
	URL        string
	Dial       Factory
	RetryDelay time.Duration        // zero means DefaultRetryDelay
	Sink       func(Event)          // receives every well-formed event
	OnState    func(State)          // optional, observes state changes
	Logf       func(string, ...any) // optional
}

// New builds a Reconciler. Dial and Sink are required.
func New(cfg Config) *Reconciler {
	retry := cfg.RetryDelay
	if retry <= 0 {
		retry = DefaultRetryDelay
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Reconciler{
		url:        cfg.URL,
		dial:       cfg.Dial,
		retryDelay: retry,
		sink:       cfg.Sink,
		onState:    cfg.OnState,
		logf:       logf,
		state:      StateClosed,
	}
}

// State returns the current connection state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) setState(s State) {
	r.mu.Lock()
	changed := r.state != s
	r.state = s
	r.mu.Unlock()
	if changed && r.onState != nil {
		r.onState(s)
	}
}

// Run drives the connection loop until the context is cancelled.
// Reconnection is unconditional: every drop schedules a fresh attempt after
// the fixed retry delay, with no attempt cap.
func (r *Reconciler) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			r.setState(StateClosed)
			return
		}

		r.setState(StateConnecting)
		channel, err := r.dial(ctx, r.url)
		if err != nil {
			r.logf("push: connect failed: %v", err)
			r.setState(StateClosed)
			if !r.sleep(ctx) {
				return
			}
			continue
		}

		r.setState(StateOpen)
		r.logf("push: connected")
		r.readLoop(ctx, channel)
		_ = channel.Close()
		r.setState(StateClosed)
		r.logf("push: disconnected, retrying in %s", r.retryDelay)
		if !r.sleep(ctx) {
			return
		}
	}
}

// readLoop consumes frames until the channel errors or the context ends.
// Malformed frames are logged and dropped without touching the connection.
func (r *Reconciler) readLoop(ctx context.Context, channel Channel) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = channel.Close()
		case <-done:
		}
	}()

	for {
		raw, err := channel.ReadMessage()
		if err != nil {
			return
		}
		event, err := ParseEvent(raw)
		if err != nil {
			r.logf("push: dropping malformed frame: %v", err)
			continue
		}
		if r.sink != nil {
			r.sink(event)
		}
	}
}

func (r *Reconciler) sleep(ctx context.Context) bool {
	timer := time.NewTimer(r.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
