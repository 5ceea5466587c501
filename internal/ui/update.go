package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/logging"
	"github.com/liontech/storefront/internal/prefs"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case bootMsg:
		return m, m.boot()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ShowSectionMsg:
		m.showSection(msg.Section)
		cmd := m.enterSection()
		return m, cmd

	case OpenProductMsg:
		return m, m.openProduct(msg.ID)

	case PushEventMsg:
		return m, m.dispatchPush(msg)

	case PushStateMsg:
		m.pushState = msg.State
		return m, nil

	case productLoadedMsg:
		return m, m.handleProductLoaded(msg)

	case productLoadFailedMsg:
		return m, m.handleProductLoadFailed(msg)

	case submitReadyMsg:
		m.handleSubmitReady(msg)
		return m, nil

	case searchDebounceMsg:
		return m, m.handleSearchDebounce(msg)

	case searchResultsMsg:
		m.handleSearchResults(msg)
		return m, nil

	case searchFailedMsg:
		m.handleSearchFailed(msg)
		return m, nil

	case ordersLoadedMsg:
		m.handleOrdersLoaded(msg)
		return m, nil

	case ordersFailedMsg:
		m.handleOrdersFailed(msg)
		return m, nil

	case cartAddedMsg:
		return m, m.handleCartAdded(msg)

	case cartAddFailedMsg:
		return m, m.handleCartAddFailed(msg)

	case cartSyncedMsg:
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the search box is focused, keys feed the input.
	if m.search.focused {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.closeOverlay()
		return m, nil
	}

	// Detail panel keys take precedence while it is shown.
	if m.overlay.phase == overlayShown {
		target := m.displayedTarget()
		switch {
		case key.Matches(msg, m.keys.NextThumb):
			target.cycleThumb(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevThumb):
			target.cycleThumb(-1)
			return m, nil
		case key.Matches(msg, m.keys.Buy):
			return m, m.submitCheckout()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextSection):
		return m, m.stepSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		return m, m.stepSection(-1)

	case key.Matches(msg, m.keys.GoHome):
		m.showSection(SectionHome)
		return m, nil

	case key.Matches(msg, m.keys.GoCatalog):
		m.showSection(SectionCatalog)
		return m, nil

	case key.Matches(msg, m.keys.GoCart):
		m.showSection(SectionCart)
		return m, nil

	case key.Matches(msg, m.keys.GoOrders):
		m.showSection(SectionOrders)
		return m, m.enterSection()

	case key.Matches(msg, m.keys.FocusSearch):
		m.showSection(SectionCatalog)
		m.search.focused = true
		return m, m.search.input.Focus()
	}

	if m.currentSection == SectionCatalog {
		switch {
		case key.Matches(msg, m.keys.CycleCategory):
			return m, m.cycleCategory()

		case key.Matches(msg, m.keys.NextPage):
			return m, m.changePage(1)

		case key.Matches(msg, m.keys.PrevPage):
			return m, m.changePage(-1)

		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if summary := m.selectedSummary(); summary != nil {
				return m, m.openProduct(summary.Key())
			}
			return m, nil

		case key.Matches(msg, m.keys.QuickAdd):
			if summary := m.selectedSummary(); summary != nil {
				return m, m.addToCartByID(summary.Key())
			}
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKey feeds keystrokes into the focused search box and queues
// the debounce tick on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.search.focused = false
		m.search.input.Blur()
		return m, nil

	case "enter":
		// Flush: invalidate any pending debounce tick and fire now.
		m.search.focused = false
		m.search.input.Blur()
		m.search.debounceSeq++
		return m, m.issueSearch()
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)

	if value := m.search.input.Value(); value != m.search.lastText {
		m.search.lastText = value
		return m, tea.Batch(cmd, m.queueDebounce())
	}
	return m, cmd
}

// stepSection cycles through the section order.
func (m *Model) stepSection(step int) tea.Cmd {
	current := 0
	for i, s := range sectionOrder {
		if s == m.currentSection {
			current = i
			break
		}
	}
	next := (current + step + len(sectionOrder)) % len(sectionOrder)
	m.showSection(sectionOrder[next])
	return m.enterSection()
}

// enterSection issues the fetch a freshly shown section needs.
func (m *Model) enterSection() tea.Cmd {
	if m.currentSection == SectionOrders && !m.orders.loaded {
		return m.refreshOrders()
	}
	return nil
}

// dispatchPush routes one push update by its model tag: cart updates run
// the sync hook, order updates patch the order row, product updates
// refresh the catalog region if it has rendered.
func (m *Model) dispatchPush(msg PushEventMsg) tea.Cmd {
	ev := msg.Event
	switch {
	case ev.IsCart():
		return m.syncCart()

	case ev.IsProduct():
		if !m.catalogRendered {
			return nil
		}
		return m.fetchCatalogPage(m.search.adHoc)

	case ev.IsOrder():
		return m.applyOrderEvent(ev.OrderID(), ev.DeliveryStatus())
	}

	logging.Printf("push: ignoring update for model %q", ev.Model)
	return nil
}
