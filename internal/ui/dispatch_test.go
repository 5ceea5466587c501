package ui

import (
	"testing"

	"github.com/liontech/storefront/internal/catalog"
	"github.com/liontech/storefront/internal/push"
)

func TestDispatchCartEventRunsSyncHook(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	synced := false
	m.cartSync = func() { synced = true }

	cmd := m.dispatchPush(PushEventMsg{Event: push.Event{Model: "cartOrder", Action: "update"}})
	runCmd(cmd)

	if !synced {
		t.Error("cart sync hook not called")
	}
}

func TestDispatchCartEventWithoutHook(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	if cmd := m.dispatchPush(PushEventMsg{Event: push.Event{Model: "cartOrder"}}); cmd != nil {
		t.Error("cart event without a hook should be a no-op")
	}
}

func TestDispatchOrderEventPatchesRowInPlace(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(fetcher)
	m.handleOrdersLoaded(ordersLoadedMsg{orders: []catalog.OrderSummary{
		{OrderID: "31", Reference: "ORD-31", Status: "pending"},
		{OrderID: "32", Reference: "ORD-32", Status: "shipped"},
	}})

	cmd := m.dispatchPush(PushEventMsg{Event: push.Event{
		Model: "Order",
		Data:  map[string]any{"order_id": "31", "delivery_status": "delivered"},
	}})

	if cmd != nil {
		t.Error("matching order should patch in place, not refetch")
	}
	rows := m.orders.rows
	if rows[0].Status != "delivered" {
		t.Errorf("row status = %q, want delivered", rows[0].Status)
	}
	if rows[1].Status != "shipped" {
		t.Errorf("other row touched: %q", rows[1].Status)
	}
	if fetcher.ordersCalls != 0 {
		t.Errorf("orders refetched %d times", fetcher.ordersCalls)
	}
}

func TestDispatchOrderEventCreatesBadgeForEmptyStatus(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.handleOrdersLoaded(ordersLoadedMsg{orders: []catalog.OrderSummary{
		{OrderID: "31", Reference: "ORD-31"},
	}})

	m.dispatchPush(PushEventMsg{Event: push.Event{
		Model: "Order",
		Data:  map[string]any{"order_id": "31", "delivery_status": "processing"},
	}})

	row := m.orders.rows[0]
	if row.Status != "processing" || !row.badge {
		t.Errorf("row = %+v, want badged processing status", row)
	}
}

func TestDispatchOrderEventUnknownIDTriggersOneRefresh(t *testing.T) {
	fetcher := &fakeFetcher{orders: []catalog.OrderSummary{{OrderID: "99", Status: "pending"}}}
	m := newTestModel(fetcher)
	m.handleOrdersLoaded(ordersLoadedMsg{orders: []catalog.OrderSummary{
		{OrderID: "31", Status: "pending"},
	}})

	cmd := m.dispatchPush(PushEventMsg{Event: push.Event{
		Model: "Order",
		Data:  map[string]any{"order_id": "99", "delivery_status": "shipped"},
	}})
	if cmd == nil {
		t.Fatal("unknown order id should refresh the region")
	}
	msgs := runCmd(cmd)
	if fetcher.ordersCalls != 1 {
		t.Fatalf("orders refetched %d times, want 1", fetcher.ordersCalls)
	}
	m.handleOrdersLoaded(msgs[0].(ordersLoadedMsg))
	if len(m.orders.rows) != 1 || m.orders.rows[0].ID != "99" {
		t.Errorf("rows = %+v after refresh", m.orders.rows)
	}
}

func TestDispatchOrderEventNumericID(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.handleOrdersLoaded(ordersLoadedMsg{orders: []catalog.OrderSummary{
		{OrderID: "31", Status: "pending"},
	}})

	// Serializers emit numeric ids in push payloads.
	m.dispatchPush(PushEventMsg{Event: push.Event{
		Model: "Order",
		Data:  map[string]any{"order_id": float64(31), "delivery_status": "delivered"},
	}})

	if m.orders.rows[0].Status != "delivered" {
		t.Errorf("status = %q, numeric id did not match", m.orders.rows[0].Status)
	}
}

func TestDispatchProductEventGatedOnRenderedCatalog(t *testing.T) {
	fetcher := &fakeFetcher{items: summaries("Thing")}
	m := newTestModel(fetcher)

	ev := push.Event{Model: "Product", Action: "update"}

	// Before the catalog region ever rendered: no fetch.
	if cmd := m.dispatchPush(PushEventMsg{Event: ev}); cmd != nil {
		t.Error("product event refreshed an unrendered catalog")
	}

	// After a first render the same event refreshes the region.
	msgs := runCmd(m.fetchCatalogPage(false))
	m.handleSearchResults(msgs[0].(searchResultsMsg))

	cmd := m.dispatchPush(PushEventMsg{Event: ev})
	if cmd == nil {
		t.Fatal("product event ignored after catalog rendered")
	}
	runCmd(cmd)
	if len(fetcher.fetchCalls) != 2 {
		t.Errorf("fetch calls = %d, want 2", len(fetcher.fetchCalls))
	}
}

func TestDispatchUnknownModelIsNoOp(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	if cmd := m.dispatchPush(PushEventMsg{Event: push.Event{Model: "Testimonial"}}); cmd != nil {
		t.Error("unknown model produced a command")
	}
}

func TestOrderEventDetectedByShape(t *testing.T) {
	// No model tag, but order fields present in the payload.
	m := newTestModel(&fakeFetcher{})
	m.handleOrdersLoaded(ordersLoadedMsg{orders: []catalog.OrderSummary{
		{OrderID: "31", Status: "pending"},
	}})

	m.dispatchPush(PushEventMsg{Event: push.Event{
		Data: map[string]any{"order_id": "31", "delivery_status": "delivered"},
	}})

	if m.orders.rows[0].Status != "delivered" {
		t.Errorf("status = %q, shape-detected order event not applied", m.orders.rows[0].Status)
	}
}
