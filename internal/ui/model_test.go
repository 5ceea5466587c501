package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liontech/storefront/internal/catalog"
)

// fakeFetcher records calls and serves canned responses.
type fakeFetcher struct {
	searchCalls []string
	fetchCalls  []catalog.Query
	ordersCalls int
	cartCalls   []catalog.CartFields

	items  []catalog.ProductSummary
	record *catalog.ProductRecord
	orders []catalog.OrderSummary
	cart   catalog.CartResponse
	err    error
}

func (f *fakeFetcher) SearchProducts(_ context.Context, search string) ([]catalog.ProductSummary, error) {
	f.searchCalls = append(f.searchCalls, search)
	return f.items, f.err
}

func (f *fakeFetcher) FetchProducts(_ context.Context, query catalog.Query) ([]catalog.ProductSummary, error) {
	f.fetchCalls = append(f.fetchCalls, query)
	return f.items, f.err
}

func (f *fakeFetcher) FetchProduct(_ context.Context, id string) (*catalog.ProductRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeFetcher) FetchOrders(_ context.Context) ([]catalog.OrderSummary, error) {
	f.ordersCalls++
	return f.orders, f.err
}

func (f *fakeFetcher) AddToCart(_ context.Context, fields catalog.CartFields) (catalog.CartResponse, error) {
	f.cartCalls = append(f.cartCalls, fields)
	return f.cart, f.err
}

func newTestModel(f catalog.Fetcher) Model {
	m := New(Options{
		Client:   f,
		Debounce: time.Millisecond,
	})
	m.statusTTL = time.Millisecond
	return m
}

// runCmd executes a command tree and returns every message it produces,
// unwrapping batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, inner := range batch {
			msgs = append(msgs, runCmd(inner)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func summaries(names ...string) []catalog.ProductSummary {
	items := make([]catalog.ProductSummary, 0, len(names))
	for i, name := range names {
		items = append(items, catalog.ProductSummary{
			ID:    catalog.ID(string(rune('1' + i))),
			Name:  name,
			Price: "10.00",
		})
	}
	return items
}
