package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/logging"
)

// overlayPhase is the product-detail panel lifecycle:
// Closed → Loading → Shown → Closed.
type overlayPhase int

const (
	overlayClosed overlayPhase = iota
	overlayLoading
	overlayShown
)

// submitEnableDelay keeps the checkout submit control disabled briefly
// after population so it can never fire against half-filled fields.
const submitEnableDelay = 30 * time.Millisecond

// renderTarget is one of the two independently maintained projections of
// the loaded product: the primary (wide) layout and the compact one. Each
// holds its own copy of every field; they never share state.
type renderTarget struct {
	title         string
	price         string
	mainImage     string
	thumbs        []string
	thumbIndex    int
	rows          []DetailRow
	description   string
	related       []RelatedCard
	form          FormFields
	submitEnabled bool
}

// populate refreshes the target from a plan. It is idempotent: populating
// twice with the same plan yields the same target, and rows for fields the
// plan no longer carries disappear entirely.
func (t *renderTarget) populate(plan RenderPlan) {
	t.submitEnabled = false
	t.title = plan.Title
	t.price = plan.Price
	t.mainImage = plan.MainImage
	t.thumbs = append([]string(nil), plan.Thumbs...)
	t.thumbIndex = -1
	t.rows = append([]DetailRow(nil), plan.Rows...)
	t.description = plan.Description
	t.related = append([]RelatedCard(nil), plan.Related...)
	t.form = plan.Form
}

// selectThumb swaps the target's main image to the chosen thumbnail
// without any re-fetch.
func (t *renderTarget) selectThumb(index int) {
	if index < 0 || index >= len(t.thumbs) {
		return
	}
	t.thumbIndex = index
	t.mainImage = t.thumbs[index]
}

// cycleThumb advances to the next thumbnail, wrapping around.
func (t *renderTarget) cycleThumb(step int) {
	if len(t.thumbs) == 0 {
		return
	}
	next := (t.thumbIndex + step) % len(t.thumbs)
	if next < 0 {
		next += len(t.thumbs)
	}
	t.selectThumb(next)
}

type overlayState struct {
	phase     overlayPhase
	productID string
	plan      RenderPlan
	primary   renderTarget
	compact   renderTarget
}

// openProduct starts loading a product into the overlay. An empty id is a
// logged no-op: some triggers carry no product reference at all.
func (m *Model) openProduct(id string) tea.Cmd {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		logging.Printf("overlay: open requested without a product id")
		return nil
	}
	m.overlay.phase = overlayLoading
	m.overlay.productID = trimmed
	return loadProductCmd(m.ctx, m.client, trimmed)
}

func loadProductCmd(ctx context.Context, client catalog.Fetcher, id string) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		record, err := client.FetchProduct(reqCtx, id)
		if err != nil {
			return productLoadFailedMsg{id: id, err: err}
		}
		return productLoadedMsg{id: id, record: *record}
	}
}

// handleProductLoaded populates both render targets from one plan,
// suspends the underlying section, and reveals the overlay.
func (m *Model) handleProductLoaded(msg productLoadedMsg) tea.Cmd {
	if m.overlay.phase != overlayLoading || msg.id != m.overlay.productID {
		return nil // a newer open superseded this load
	}

	plan := buildRenderPlan(msg.record, m.productURL)
	m.overlay.plan = plan
	m.overlay.primary.populate(plan)
	m.overlay.compact.populate(plan)

	m.suspendSections()
	m.overlay.phase = overlayShown

	cmds := []tea.Cmd{
		submitReadyCmd(msg.id),
		func() tea.Msg { return ProductShownMsg{ID: msg.id} },
	}
	if m.onProductShown != nil {
		hook := m.onProductShown
		id := msg.id
		cmds = append(cmds, func() tea.Msg {
			hook(id)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// handleProductLoadFailed degrades to the canonical product page in the
// browser rather than showing a broken overlay.
func (m *Model) handleProductLoadFailed(msg productLoadFailedMsg) tea.Cmd {
	if m.overlay.phase != overlayLoading || msg.id != m.overlay.productID {
		return nil
	}
	logging.Printf("overlay: product %s load failed, falling back to browser: %v", msg.id, msg.err)
	m.overlay.phase = overlayClosed
	m.overlay.productID = ""
	// A load issued while the panel was already up left sections
	// suspended; put the prior one back.
	m.resumeSection()
	m.setStatus("Couldn't load product details; opening in browser", statusWarn)

	if m.navigate == nil || m.productURL == nil {
		return m.statusClearCmd()
	}
	navigate := m.navigate
	target := m.productURL(msg.id)
	return tea.Batch(m.statusClearCmd(), func() tea.Msg {
		if err := navigate(target); err != nil {
			logging.Printf("overlay: browser fallback failed: %v", err)
		}
		return nil
	})
}

// handleSubmitReady re-enables both checkout sub-forms once population has
// settled.
func (m *Model) handleSubmitReady(msg submitReadyMsg) {
	if m.overlay.phase != overlayShown || msg.id != m.overlay.productID {
		return
	}
	m.overlay.primary.submitEnabled = true
	m.overlay.compact.submitEnabled = true
}

// closeOverlay hides the panel and restores whichever section was visible
// before it opened.
func (m *Model) closeOverlay() {
	switch m.overlay.phase {
	case overlayClosed:
		return
	case overlayLoading:
		// Abandon the in-flight load; its response will be discarded.
		m.overlay.phase = overlayClosed
		m.overlay.productID = ""
		return
	}
	m.overlay.phase = overlayClosed
	m.overlay.productID = ""
	m.resumeSection()
}

// displayedTarget returns the render target the current terminal width
// selects.
func (m *Model) displayedTarget() *renderTarget {
	if m.width > 0 && m.width < LayoutCompactWidth {
		return &m.overlay.compact
	}
	return &m.overlay.primary
}

// submitCheckout posts the displayed target's sub-form. The control is
// inert until population re-enabled it.
func (m *Model) submitCheckout() tea.Cmd {
	target := m.displayedTarget()
	if m.overlay.phase != overlayShown || !target.submitEnabled {
		return nil
	}
	fields := catalog.CartFields{
		ProductID: target.form.ProductID,
		Name:      target.form.Name,
		Price:     target.form.Price,
		Condition: target.form.Condition,
		Category:  target.form.Category,
		ImageURL:  target.form.ImageURL,
	}
	return addToCartCmd(m.ctx, m.client, fields)
}
