// Package app wires configuration, the catalog client, live updates, and
// the UI into the running storefront application.
package app

import (
	"context"
	"fmt"

	"github.com/pkg/browser"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/config"
	"github.com/liontech/storefront/internal/logging"
	"github.com/liontech/storefront/internal/prefs"
	"github.com/liontech/storefront/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/storefront/prefs.toml
	StartRoute string // boot location, e.g. "/?search=phone"
	Debug      bool
}

// Run boots the storefront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Configure(cfg.LogFile)
	if opts.Debug {
		logging.Printf("app: starting with api %s", cfg.APIBase)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := catalog.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	wsURL := cfg.WSURL
	if wsURL == "" {
		wsURL = client.UpdatesURL()
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Client:     client,
		Cache:      catalog.NewCache(),
		Debounce:   cfg.Debounce(),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		StartRoute: opts.StartRoute,
		Navigate:   browser.OpenURL,
		ProductURL: client.ProductURL,
	}
	updates := ui.UpdateOptions{
		URL:        wsURL,
		RetryDelay: cfg.Reconnect(),
	}
	return ui.Run(uiOpts, updates)
}
