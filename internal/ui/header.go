package ui

import (
	"fmt"
	"strings"

	"github.com/liontech/storefront/internal/push"
)

// renderHeader renders the top bar: logo, cart badge, live-update state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("storefront")}

	// The badge stays hidden until the cart holds something.
	if m.cart.hasSync && m.cart.count > 0 {
		parts = append(parts, styles.InfoText.Render(fmt.Sprintf("cart %d", m.cart.count)))
	}

	switch m.pushState {
	case push.StateOpen:
		parts = append(parts, styles.SuccessText.Render("● live"))
	case push.StateConnecting:
		parts = append(parts, styles.WarningText.Render("○ connecting"))
	default:
		parts = append(parts, styles.MutedText.Render("○ offline"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}
