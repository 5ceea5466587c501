package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/logging"
)

// OrderRow is one rendered order-history entry, tagged by order id so push
// updates can patch its status in place.
type OrderRow struct {
	ID        string
	Reference string
	Total     string
	Status    string
	PlacedAt  string
	// badge marks a status created by a push patch on a row that had
	// none, rendered as a small inline badge.
	badge bool
}

type ordersState struct {
	rows    []OrderRow
	loaded  bool
	loading bool
}

type ordersLoadedMsg struct {
	orders []catalog.OrderSummary
}

type ordersFailedMsg struct {
	err error
}

// refreshOrders re-fetches the whole orders region. This is the
// coarse-grained fallback; the common path is a targeted row patch.
func (m *Model) refreshOrders() tea.Cmd {
	if m.orders.loading {
		return nil
	}
	m.orders.loading = true
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		orders, err := client.FetchOrders(reqCtx)
		if err != nil {
			return ordersFailedMsg{err: err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

func (m *Model) handleOrdersLoaded(msg ordersLoadedMsg) {
	m.orders.loading = false
	m.orders.loaded = true
	rows := make([]OrderRow, 0, len(msg.orders))
	for _, order := range msg.orders {
		rows = append(rows, OrderRow{
			ID:        order.OrderID.String(),
			Reference: order.Reference,
			Total:     order.Total.String(),
			Status:    order.Status,
			PlacedAt:  order.PlacedAt,
		})
	}
	m.orders.rows = rows
}

func (m *Model) handleOrdersFailed(msg ordersFailedMsg) {
	m.orders.loading = false
	logging.Printf("orders: refresh failed: %v", msg.err)
}

// applyOrderEvent patches the status of the row matching the event's order
// id, creating a status badge when the row has none. Only when no row
// matches does it fall back to one coarse refresh of the region.
func (m *Model) applyOrderEvent(orderID, status string) tea.Cmd {
	if orderID == "" {
		return nil
	}
	for i := range m.orders.rows {
		if m.orders.rows[i].ID != orderID {
			continue
		}
		if m.orders.rows[i].Status == "" {
			m.orders.rows[i].badge = true
		}
		m.orders.rows[i].Status = status
		return nil
	}
	if !m.orders.loaded {
		// The region has never rendered; nothing to reconcile yet.
		return nil
	}
	return m.refreshOrders()
}
