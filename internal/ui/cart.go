package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/logging"
)

type cartState struct {
	count   int
	hasSync bool
	lastAdd string
}

type cartAddedMsg struct {
	productID string
	resp      catalog.CartResponse
}

type cartAddFailedMsg struct {
	productID string
	err       error
}

type cartSyncedMsg struct{}

// addToCartCmd submits the buy form for one product.
func addToCartCmd(ctx context.Context, client catalog.Fetcher, fields catalog.CartFields) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		resp, err := client.AddToCart(reqCtx, fields)
		if err != nil {
			return cartAddFailedMsg{productID: fields.ProductID, err: err}
		}
		return cartAddedMsg{productID: fields.ProductID, resp: resp}
	}
}

// addToCartByID builds cart fields for a cached catalog row. Used by the
// quick-add key on the catalog list, where no buy form is showing.
func (m *Model) addToCartByID(id string) tea.Cmd {
	summary, ok := m.cache.Get(id)
	if !ok {
		logging.Printf("cart: product %q not cached, skipping add", id)
		return nil
	}
	fields := catalog.CartFields{
		ProductID: summary.Key(),
		Name:      summary.Name,
		Price:     summary.Price.String(),
		Condition: summary.Condition,
		Category:  summary.Category,
		ImageURL:  summary.Image.String(),
	}
	if fields.Price == "" {
		fields.Price = "0.00"
	}
	if fields.ImageURL == "" {
		fields.ImageURL = defaultImageURL
	}
	return addToCartCmd(m.ctx, m.client, fields)
}

func (m *Model) handleCartAdded(msg cartAddedMsg) tea.Cmd {
	m.cart.lastAdd = msg.productID
	if msg.resp.CartCount != nil {
		m.cart.count = *msg.resp.CartCount
		m.cart.hasSync = true
	}
	if !msg.resp.Success {
		text := msg.resp.Message
		if text == "" {
			text = "Could not add product to cart"
		}
		m.setStatus(text, statusWarn)
		return m.statusClearCmd()
	}
	m.setStatus("Added to cart", statusInfo)
	return m.statusClearCmd()
}

func (m *Model) handleCartAddFailed(msg cartAddFailedMsg) tea.Cmd {
	logging.Printf("cart: add %q failed: %v", msg.productID, msg.err)
	m.setStatus("Could not reach the store, try again", statusWarn)
	return m.statusClearCmd()
}

// syncCart runs the cart refresh hook, if one is configured. Fired when a
// push update reports the cart changed from another session.
func (m *Model) syncCart() tea.Cmd {
	if m.cartSync == nil {
		return nil
	}
	hook := m.cartSync
	return func() tea.Msg {
		hook()
		return cartSyncedMsg{}
	}
}
