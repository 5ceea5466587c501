package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain renders the full UI: header bar, content area, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the detail panel when it covers the sections,
// otherwise the single visible section.
func (m Model) renderContent() string {
	if m.overlay.phase == overlayShown {
		return m.renderDetail()
	}
	if m.overlay.phase == overlayLoading {
		return m.spinner.View() + m.theme.Styles().MutedText.Render(" Loading product details...")
	}

	switch m.currentSection {
	case SectionHome:
		return m.renderHome()
	case SectionCatalog:
		return m.renderCatalog()
	case SectionCart:
		return m.renderCart()
	case SectionOrders:
		return m.renderOrders()
	case SectionAccount:
		return m.renderStatic("Account",
			"Sign in on the website to manage your account details.")
	case SectionTestimonials:
		return m.renderStatic("Testimonials",
			"What our customers say about us.")
	case SectionAbout:
		return m.renderStatic("About",
			"Quality refurbished electronics, tested and guaranteed.")
	default:
		return ""
	}
}

// renderNav renders the section bar with the current section highlighted.
func (m Model) renderNav() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		label := " " + s.Label() + " "
		if s == m.currentSection && m.overlay.phase != overlayShown {
			parts = append(parts, styles.Selected.Render(label))
			continue
		}
		parts = append(parts, styles.MutedText.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderHome() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Welcome to the store"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Browse the catalog, search for products, and track your orders."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press 2 for the catalog, / to search."))
	return b.String()
}

// renderCatalog renders the search box, category strip, result list, and
// the paginator when server paging is active.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.search.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderCategories())
	b.WriteString("\n\n")

	switch {
	case m.search.loading && len(m.search.items) == 0:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Searching..."))
	case m.search.noResults:
		b.WriteString(styles.MutedText.Render("No products found."))
	default:
		b.WriteString(m.renderProductList())
	}

	if !m.search.paginationHidden && !m.search.noResults {
		b.WriteString("\n\n")
		b.WriteString(m.search.pagination.View())
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  page %d", m.search.page)))
	}

	return b.String()
}

func (m Model) renderCategories() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(categories))
	for i, cat := range categories {
		label := cat
		if label == "" {
			label = "all"
		}
		if i == m.search.categoryIndex && m.search.filter == cat {
			parts = append(parts, styles.AccentText.Render("["+label+"]"))
			continue
		}
		parts = append(parts, styles.FaintText.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderProductList() string {
	styles := m.theme.Styles()
	var b strings.Builder

	limit := len(m.search.items)
	if limit > catalogRowLimit {
		limit = catalogRowLimit
	}
	for i := 0; i < limit; i++ {
		item := m.search.items[i]
		name := padRight(truncate(item.Name, catalogNameWidth), catalogNameWidth)
		price := padRight("$"+item.Price.String(), 10)
		condition := item.Condition
		row := fmt.Sprintf("%s %s %s", name, price, condition)
		if i == m.search.selected {
			b.WriteString(styles.Selected.Render("> " + row))
		} else {
			b.WriteString(styles.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}
	if len(m.search.items) > limit {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  ... and %d more", len(m.search.items)-limit)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCart() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Cart"))
	b.WriteString("\n\n")
	if m.cart.hasSync {
		unit := "items"
		if m.cart.count == 1 {
			unit = "item"
		}
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d %s in your cart.", m.cart.count, unit)))
	} else {
		b.WriteString(styles.MutedText.Render("Add products from the catalog to see them here."))
	}
	return b.String()
}

func (m Model) renderOrders() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Order History"))
	b.WriteString("\n\n")

	switch {
	case m.orders.loading && len(m.orders.rows) == 0:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Loading orders..."))
	case len(m.orders.rows) == 0:
		b.WriteString(styles.MutedText.Render("No orders yet."))
	default:
		for _, row := range m.orders.rows {
			ref := row.Reference
			if ref == "" {
				ref = "#" + row.ID
			}
			b.WriteString(styles.Text.Render(padRight(truncate(ref, 24), 26)))
			b.WriteString(styles.MutedText.Render(padRight("$"+row.Total, 12)))
			if row.Status != "" {
				b.WriteString(styles.StatusStyle(strings.ToLower(row.Status)).Render(titleCase(row.Status)))
				if row.badge {
					b.WriteString(" " + styles.InfoText.Render("updated"))
				}
			}
			if row.PlacedAt != "" {
				b.WriteString("  " + styles.FaintText.Render(row.PlacedAt))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatic(title, body string) string {
	styles := m.theme.Styles()
	return styles.AccentText.Render(title) + "\n\n" + styles.Text.Render(body)
}

// renderDetail renders the product panel in whichever projection the
// terminal width selects.
func (m Model) renderDetail() string {
	if m.width > 0 && m.width < LayoutCompactWidth {
		return m.renderDetailCompact(&m.overlay.compact)
	}
	return m.renderDetailPrimary(&m.overlay.primary)
}

// renderDetailPrimary is the wide two-column projection: imagery and rows
// on the left, description and related strip on the right.
func (m Model) renderDetailPrimary(t *renderTarget) string {
	styles := m.theme.Styles()

	var left strings.Builder
	left.WriteString(styles.AccentText.Render(t.title))
	left.WriteString("\n")
	left.WriteString(styles.SuccessText.Render(t.price))
	left.WriteString("\n\n")
	left.WriteString(m.renderImagery(t))
	left.WriteString("\n")
	left.WriteString(m.renderDetailRows(t))
	left.WriteString("\n\n")
	left.WriteString(m.renderBuyControl(t))

	var right strings.Builder
	if t.description != "" {
		right.WriteString(styles.Text.Render("Description"))
		right.WriteString("\n")
		right.WriteString(styles.MutedText.Render(truncate(t.description, 600)))
		right.WriteString("\n\n")
	}
	right.WriteString(m.renderRelated(t))

	if m.width >= LayoutWideWidth {
		leftPanel := styles.FocusPanel.Width(m.width/2 - 2).Render(left.String())
		rightPanel := styles.Panel.Width(m.width/2 - 2).Render(right.String())
		return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}
	width := m.width - 2
	if width < 40 {
		width = 40
	}
	return styles.FocusPanel.Width(width).Render(left.String() + "\n\n" + right.String())
}

// renderDetailCompact is the stacked narrow projection.
func (m Model) renderDetailCompact(t *renderTarget) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(t.title))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render(t.price))
	b.WriteString("\n\n")
	b.WriteString(m.renderImagery(t))
	b.WriteString("\n")
	b.WriteString(m.renderDetailRows(t))
	b.WriteString("\n\n")
	b.WriteString(m.renderBuyControl(t))
	if len(t.related) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.renderRelated(t))
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return styles.FocusPanel.Width(width).Render(b.String())
}

// renderImagery shows the selected main image URL and the thumbnail strip.
func (m Model) renderImagery(t *renderTarget) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.FaintText.Render(truncate(t.mainImage, 60)))
	if len(t.thumbs) > 1 {
		b.WriteString("\n")
		marks := make([]string, len(t.thumbs))
		for i := range t.thumbs {
			if i == t.thumbIndex {
				marks[i] = styles.AccentText.Render("●")
			} else {
				marks[i] = styles.FaintText.Render("○")
			}
		}
		b.WriteString(strings.Join(marks, " "))
		b.WriteString(styles.FaintText.Render("  n/p to switch"))
	}
	return b.String()
}

func (m Model) renderDetailRows(t *renderTarget) string {
	styles := m.theme.Styles()
	var b strings.Builder
	for _, row := range t.rows {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(padRight(row.Label, 16)))
		b.WriteString(styles.Text.Render(row.Value))
	}
	return b.String()
}

func (m Model) renderBuyControl(t *renderTarget) string {
	styles := m.theme.Styles()
	if t.submitEnabled {
		return styles.SuccessText.Render("[ Buy Now (b) ]")
	}
	return styles.FaintText.Render("[ Buy Now ]")
}

func (m Model) renderRelated(t *renderTarget) string {
	if len(t.related) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Render("Related Products"))
	b.WriteString("\n")
	for _, card := range t.related {
		b.WriteString(styles.MutedText.Render("  " + padRight(truncate(card.Name, 32), 34)))
		b.WriteString(styles.FaintText.Render(card.Price))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFooter shows the transient status message or the short help hint.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		if m.statusKind == statusWarn {
			return styles.Footer.Render(styles.WarningText.Render(m.status))
		}
		return styles.Footer.Render(styles.SuccessText.Render(m.status))
	}
	return styles.Footer.Width(m.width).Render("h/? help  |  q quit")
}
