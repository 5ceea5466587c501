// Package ui provides the Bubble Tea storefront interface.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/prefs"
	"github.com/liontech/storefront/internal/push"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    catalog.Fetcher
	Cache     *catalog.Cache
	Debounce  time.Duration
	ThemeName string
	PrefsPath string

	// StartRoute is the boot location, inspected once to decide the
	// starting section and seed the catalog query.
	StartRoute string

	// Navigate opens a URL outside the UI, used as the fallback when a
	// product cannot be shown inline.
	Navigate func(string) error
	// ProductURL maps a product id to its canonical page URL.
	ProductURL func(string) string

	// OnProductShown runs after the detail panel finishes populating.
	OnProductShown func(string)
	// CartSync runs when a push update reports the cart changed.
	CartSync func()
}

// statusLevel classifies transient status-bar messages.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
)

// statusClearDelay is how long a transient status message stays visible.
const statusClearDelay = 4 * time.Second

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    catalog.Fetcher
	cache     *catalog.Cache
	debounce  time.Duration
	prefsPath string

	navigate       func(string) error
	productURL     func(string) string
	onProductShown func(string)
	cartSync       func()

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Section state
	currentSection  Section
	previousSection *Section
	contentScroll   int

	// Catalog state
	search searchState
	// catalogRendered is true once the catalog region has rendered at
	// least once; push-driven product refreshes are gated on it.
	catalogRendered bool

	// Detail panel state
	overlay overlayState

	// Cart and order history state
	cart   cartState
	orders ordersState

	// Push connection state, shown in the header.
	pushState push.State

	// Shared loading indicator
	spinner spinner.Model

	// Help overlay
	showHelp bool

	// Transient status bar message
	status     string
	statusKind statusLevel
	statusSeq  int
	statusTTL  time.Duration
}

// ShowSectionMsg requests that a section become the visible one.
type ShowSectionMsg struct {
	Section Section
}

// OpenProductMsg requests the detail panel for a product.
type OpenProductMsg struct {
	ID string
}

// ProductShownMsg is emitted after the detail panel finishes populating.
type ProductShownMsg struct {
	ID string
}

// PushEventMsg carries one reconciled push update into the UI.
type PushEventMsg struct {
	Event push.Event
}

// PushStateMsg reports push connection state changes.
type PushStateMsg struct {
	State push.State
}

type bootMsg struct{}

type productLoadedMsg struct {
	id     string
	record catalog.ProductRecord
}

type productLoadFailedMsg struct {
	id  string
	err error
}

type submitReadyMsg struct {
	id string
}

type searchDebounceMsg struct {
	seq int
}

type searchResultsMsg struct {
	seq   int
	items []catalog.ProductSummary
	adHoc bool
}

type searchFailedMsg struct {
	seq int
	err error
}

type statusClearMsg struct {
	seq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	cache := opts.Cache
	if cache == nil {
		cache = catalog.NewCache()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(GetTheme(themeName).Accent))

	m := Model{
		ctx:            ctx,
		client:         opts.Client,
		cache:          cache,
		debounce:       debounce,
		prefsPath:      prefsPath,
		navigate:       opts.Navigate,
		productURL:     opts.ProductURL,
		onProductShown: opts.OnProductShown,
		cartSync:       opts.CartSync,
		theme:          GetTheme(themeName),
		keys:           DefaultKeyMap(),
		search:         newSearchState(),
		pushState:      push.StateConnecting,
		spinner:        spin,
		statusTTL:      statusClearDelay,
	}

	// The boot route is inspected exactly once.
	m.currentSection = StartSection(opts.StartRoute)
	searchText, filter := StartQuery(opts.StartRoute)
	m.search.input.SetValue(searchText)
	m.search.lastText = searchText
	m.search.filter = filter

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		func() tea.Msg { return bootMsg{} },
	)
}

// boot issues the startup fetches: the first catalog page, seeded with
// the boot route's query if it carried one.
func (m *Model) boot() tea.Cmd {
	adHoc := m.search.input.Value() != "" || m.search.filter != ""
	cmds := []tea.Cmd{m.fetchCatalogPage(adHoc)}
	if m.currentSection == SectionOrders {
		cmds = append(cmds, m.refreshOrders())
	}
	return tea.Batch(cmds...)
}

// setStatus puts a transient message in the status bar.
func (m *Model) setStatus(text string, kind statusLevel) {
	m.status = text
	m.statusKind = kind
	m.statusSeq++
}

// statusClearCmd schedules removal of the current status message. A later
// setStatus invalidates the pending clear.
func (m *Model) statusClearCmd() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// submitReadyCmd re-enables the checkout control shortly after the detail
// panel populates.
func submitReadyCmd(id string) tea.Cmd {
	return tea.Tick(submitEnableDelay, func(time.Time) tea.Msg {
		return submitReadyMsg{id: id}
	})
}
