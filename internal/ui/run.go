package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/logging"
	"github.com/liontech/storefront/internal/push"
)

// UpdateOptions configures the live-updates connection Run maintains
// alongside the program.
type UpdateOptions struct {
	URL        string
	Dial       push.Factory  // nil uses the websocket dialer
	RetryDelay time.Duration // zero uses push.DefaultRetryDelay
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. When updates carries a URL, a push reconciler runs
// beside the program and feeds it events.
func Run(opts Options, updates UpdateOptions) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if updates.URL != "" {
		dial := updates.Dial
		if dial == nil {
			dial = push.DialWebsocket
		}
		rec := push.New(push.Config{
			URL:        updates.URL,
			Dial:       dial,
			RetryDelay: updates.RetryDelay,
			Sink: func(ev push.Event) {
				p.Send(PushEventMsg{Event: ev})
			},
			OnState: func(s push.State) {
				p.Send(PushStateMsg{State: s})
			},
			Logf: logging.Printf,
		})
		go rec.Run(ctx)
	}

	_, err := p.Run()
	return err
}
