package push

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

// fakeChannel replays scripted frames, then fails with its final error.
type fakeChannel struct {
	mu     sync.Mutex
	frames [][]byte
	err    error
	closed bool
}

func (c *fakeChannel) ReadMessage() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, io.ErrClosedPipe
	}
	if len(c.frames) == 0 {
		return nil, c.err
	}
	frame := c.frames[0]
	c.frames = c.frames[1:]
	return frame, nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestParseEvent(t *testing.T) {
	cases := []struct {
		name       string
		frame      string
		wantModel  string
		wantOrder  bool
		wantID     string
		wantStatus string
		wantErr    bool
	}{
		{
			name:      "wrapper_model",
			frame:     `{"model":"Order","action":"updated","data":{"order_id":12,"delivery_status":"Shipped"}}`,
			wantModel: "Order", wantOrder: true, wantID: "12", wantStatus: "Shipped",
		},
		{
			name:      "inner_model_only",
			frame:     `{"data":{"model":"Product","id":3}}`,
			wantModel: "Product",
		},
		{
			name:      "nested_inner_data",
			frame:     `{"data":{"model":"Order","action":"updated","data":{"order_id":"A7","delivery_status":"Delivered"}}}`,
			wantModel: "Order", wantOrder: true, wantID: "A7", wantStatus: "Delivered",
		},
		{
			name:      "order_by_shape",
			frame:     `{"data":{"order_id":"9","delivery_status":"Pending"}}`,
			wantOrder: true, wantID: "9", wantStatus: "Pending",
		},
		{
			name:    "malformed",
			frame:   `not json`,
			wantErr: true,
		},
		{
			name:    "wrong_data_type",
			frame:   `{"data":[1,2,3]}`,
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := ParseEvent([]byte(tc.frame))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEvent: %v", err)
			}
			if event.Model != tc.wantModel {
				t.Fatalf("model = %q, want %q", event.Model, tc.wantModel)
			}
			if event.IsOrder() != tc.wantOrder {
				t.Fatalf("IsOrder = %v, want %v", event.IsOrder(), tc.wantOrder)
			}
			if event.OrderID() != tc.wantID {
				t.Fatalf("OrderID = %q, want %q", event.OrderID(), tc.wantID)
			}
			if event.DeliveryStatus() != tc.wantStatus {
				t.Fatalf("DeliveryStatus = %q, want %q", event.DeliveryStatus(), tc.wantStatus)
			}
		})
	}
}

func TestReconciler_DeliversEventsAndDropsMalformed(t *testing.T) {
	events := make(chan Event, 4)
	channel := &fakeChannel{
		frames: [][]byte{
			[]byte(`{"model":"Product","data":{"id":1}}`),
			[]byte(`garbage`),
			[]byte(`{"model":"cartOrder","data":{"model":"cartOrder"}}`),
		},
		err: io.EOF,
	}
	dials := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := New(Config{
		URL: "ws://test/ws/updates/",
		Dial: func(ctx context.Context, url string) (Channel, error) {
			dials++
			if dials == 1 {
				return channel, nil
			}
			cancel()
			return nil, errors.New("stop")
		},
		RetryDelay: time.Millisecond,
		Sink:       func(e Event) { events <- e },
	})

	done := make(chan struct{})
	go func() {
		rec.Run(ctx)
		close(done)
	}()

	first := <-events
	if !first.IsProduct() {
		t.Fatalf("first event = %+v, want product", first)
	}
	second := <-events
	if !second.IsCart() {
		t.Fatalf("second event = %+v, want cart", second)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop after context cancel")
	}

	// The malformed frame between the two events was dropped without
	// tearing down the connection: both surrounding events arrived on the
	// same dial.
	if dials < 2 {
		t.Fatalf("dials = %d, want reconnect attempt after EOF", dials)
	}
}

func TestReconciler_RetriesIndefinitelyOnDialFailure(t *testing.T) {
	var mu sync.Mutex
	dials := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := New(Config{
		URL: "ws://test/ws/updates/",
		Dial: func(ctx context.Context, url string) (Channel, error) {
			mu.Lock()
			dials++
			n := dials
			mu.Unlock()
			if n >= 5 {
				cancel()
			}
			return nil, errors.New("refused")
		},
		RetryDelay: time.Millisecond,
		Sink:       func(Event) {},
	})

	done := make(chan struct{})
	go func() {
		rec.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	if dials < 5 {
		t.Fatalf("dials = %d, want at least 5", dials)
	}
	if rec.State() != StateClosed {
		t.Fatalf("state = %v, want closed", rec.State())
	}
}

func TestReconciler_StateTransitions(t *testing.T) {
	opened := make(chan struct{})
	block := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := New(Config{
		URL: "ws://test/ws/updates/",
		Dial: func(ctx context.Context, url string) (Channel, error) {
			return &blockingChannel{opened: opened, block: block}, nil
		},
		RetryDelay: time.Millisecond,
		Sink:       func(Event) {},
	})

	go rec.Run(ctx)

	<-opened
	if rec.State() != StateOpen {
		t.Fatalf("state = %v, want open", rec.State())
	}
	cancel()
	close(block)
}

type blockingChannel struct {
	opened chan struct{}
	block  chan struct{}
	once   sync.Once
}

func (c *blockingChannel) ReadMessage() ([]byte, error) {
	c.once.Do(func() { close(c.opened) })
	<-c.block
	return nil, io.EOF
}

func (c *blockingChannel) Close() error {
	return nil
}
