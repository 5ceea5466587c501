package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/logging"
)

// categories mirror the storefront's sidebar filters. An empty filter is
// the "all products" reset.
var categories = [...]string{"", "phones", "laptops", "tablets", "accessories"}

// searchState drives the debounced live search and category filtering of
// the catalog section.
type searchState struct {
	input    textinput.Model
	focused  bool
	lastText string

	// debounceSeq stamps keystrokes; only the tick carrying the latest
	// stamp issues a request.
	debounceSeq int
	// requestSeq stamps issued requests; only the newest request's
	// response may render (stale-response discard).
	requestSeq int

	filter        string
	categoryIndex int

	items     []catalog.ProductSummary
	selected  int
	loading   bool
	noResults bool
	// adHoc marks the region as holding live-search or category results,
	// which suppresses the server paginator.
	adHoc bool

	page             int
	pagination       paginator.Model
	paginationHidden bool
}

func newSearchState() searchState {
	input := textinput.New()
	input.Placeholder = "Search products..."
	input.CharLimit = 80
	input.Width = 32

	pages := paginator.New()
	pages.Type = paginator.Dots
	pages.SetTotalPages(1)

	return searchState{
		input:      input,
		page:       1,
		pagination: pages,
	}
}

// queueDebounce registers a keystroke and schedules the quiet-interval
// tick. Earlier pending ticks are invalidated by the bumped sequence, so
// only the last call within the interval issues a request.
func (m *Model) queueDebounce() tea.Cmd {
	m.search.debounceSeq++
	seq := m.search.debounceSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// handleSearchDebounce fires the live-search request for the surviving
// keystroke.
func (m *Model) handleSearchDebounce(msg searchDebounceMsg) tea.Cmd {
	if msg.seq != m.search.debounceSeq {
		return nil // superseded by a later keystroke
	}
	return m.issueSearch()
}

// issueSearch sends the current free-text query to the live search
// endpoint.
func (m *Model) issueSearch() tea.Cmd {
	m.search.requestSeq++
	seq := m.search.requestSeq
	m.search.loading = true
	search := m.search.input.Value()
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		items, err := client.SearchProducts(reqCtx, search)
		if err != nil {
			return searchFailedMsg{seq: seq, err: err}
		}
		return searchResultsMsg{seq: seq, items: items, adHoc: true}
	}
}

// selectCategory composes the current query text with a category filter
// and fetches through the paginated endpoint. An empty filter with an
// empty query is the explicit category reset, which restores the
// paginator.
func (m *Model) selectCategory(filter string) tea.Cmd {
	m.search.filter = filter
	reset := filter == "" && m.search.input.Value() == ""
	if reset {
		m.search.paginationHidden = false
		m.search.page = 1
	}
	return m.fetchCatalogPage(!reset)
}

// cycleCategory steps through the fixed category list.
func (m *Model) cycleCategory() tea.Cmd {
	m.search.categoryIndex = (m.search.categoryIndex + 1) % len(categories)
	return m.selectCategory(categories[m.search.categoryIndex])
}

// fetchCatalogPage requests the current page fragment with the current
// search and filter. Both user-driven and push-driven refreshes funnel
// through this path so every result list renders identically.
func (m *Model) fetchCatalogPage(adHoc bool) tea.Cmd {
	m.search.requestSeq++
	seq := m.search.requestSeq
	m.search.loading = true
	query := catalog.Query{
		Page:   m.search.page,
		Search: m.search.input.Value(),
		Filter: m.search.filter,
	}
	if adHoc {
		query.Page = 1
	}
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		items, err := client.FetchProducts(reqCtx, query)
		if err != nil {
			return searchFailedMsg{seq: seq, err: err}
		}
		return searchResultsMsg{seq: seq, items: items, adHoc: adHoc}
	}
}

// handleSearchResults replaces the catalog region's content wholesale.
// Stale responses are discarded: only the most recently issued request may
// render.
func (m *Model) handleSearchResults(msg searchResultsMsg) {
	if msg.seq != m.search.requestSeq {
		logging.Printf("search: discarding stale response (seq %d, latest %d)", msg.seq, m.search.requestSeq)
		return
	}
	m.search.loading = false
	m.search.items = msg.items
	m.search.noResults = len(msg.items) == 0
	m.search.adHoc = msg.adHoc
	m.search.selected = 0
	m.catalogRendered = true
	if msg.adHoc {
		// Ad-hoc results and the server paginator are mutually
		// exclusive; once hidden it stays hidden until an explicit
		// category reset.
		m.search.paginationHidden = true
	}
	if !msg.adHoc && len(msg.items) > 0 {
		if m.search.page > m.search.pagination.TotalPages {
			m.search.pagination.SetTotalPages(m.search.page)
		}
		m.search.pagination.Page = m.search.page - 1
	}
	m.cache.Put(msg.items)
}

// handleSearchFailed logs and leaves the region exactly as it was; a
// transport failure must never blank previously rendered results.
func (m *Model) handleSearchFailed(msg searchFailedMsg) {
	if msg.seq != m.search.requestSeq {
		return
	}
	m.search.loading = false
	logging.Printf("search: fetch failed: %v", msg.err)
}

// changePage steps the server paginator. Suppressed while ad-hoc results
// are shown.
func (m *Model) changePage(step int) tea.Cmd {
	if m.search.paginationHidden {
		return nil
	}
	next := m.search.page + step
	if next < 1 {
		return nil
	}
	m.search.page = next
	return m.fetchCatalogPage(false)
}

// selectedSummary returns the highlighted catalog item, nil when the list
// is empty.
func (m *Model) selectedSummary() *catalog.ProductSummary {
	if m.search.selected < 0 || m.search.selected >= len(m.search.items) {
		return nil
	}
	return &m.search.items[m.search.selected]
}

// moveSelection moves the catalog cursor within bounds.
func (m *Model) moveSelection(step int) {
	count := len(m.search.items)
	if count == 0 {
		return
	}
	next := m.search.selected + step
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	m.search.selected = next
}
