package ui

import (
	"errors"
	"testing"

	"github.com/liontech/storefront/internal/catalog"
)

func TestAddToCartByIDUsesCachedSummary(t *testing.T) {
	fetcher := &fakeFetcher{cart: catalog.CartResponse{Success: true}}
	m := newTestModel(fetcher)
	m.cache.Put([]catalog.ProductSummary{{
		ID:        "42",
		Name:      "Galaxy S21",
		Price:     "19.99",
		Condition: "Refurbished",
		Category:  "phones",
		Image:     "/media/p42.jpg",
	}})

	runCmd(m.addToCartByID("42"))

	if len(fetcher.cartCalls) != 1 {
		t.Fatalf("cart calls = %d, want 1", len(fetcher.cartCalls))
	}
	fields := fetcher.cartCalls[0]
	if fields.ProductID != "42" || fields.Name != "Galaxy S21" {
		t.Errorf("fields = %+v", fields)
	}
	if fields.ImageURL != "/media/p42.jpg" {
		t.Errorf("ImageURL = %q", fields.ImageURL)
	}
}

func TestAddToCartByIDUncachedIsNoOp(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(fetcher)

	if cmd := m.addToCartByID("missing"); cmd != nil {
		t.Error("uncached id produced a command")
	}
	if len(fetcher.cartCalls) != 0 {
		t.Error("cart endpoint called for uncached id")
	}
}

func TestAddToCartByIDFillsDefaults(t *testing.T) {
	fetcher := &fakeFetcher{cart: catalog.CartResponse{Success: true}}
	m := newTestModel(fetcher)
	m.cache.Put([]catalog.ProductSummary{{ID: "9", Name: "Bare"}})

	runCmd(m.addToCartByID("9"))

	fields := fetcher.cartCalls[0]
	if fields.Price != "0.00" {
		t.Errorf("Price = %q, want 0.00", fields.Price)
	}
	if fields.ImageURL != defaultImageURL {
		t.Errorf("ImageURL = %q, want default", fields.ImageURL)
	}
}

func TestHandleCartAddedUpdatesBadge(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	count := 3

	m.handleCartAdded(cartAddedMsg{
		productID: "42",
		resp:      catalog.CartResponse{Success: true, CartCount: &count},
	})

	if m.cart.count != 3 || !m.cart.hasSync {
		t.Errorf("cart = %+v, want count 3", m.cart)
	}
	if m.status == "" {
		t.Error("no confirmation status set")
	}
}

func TestHandleCartAddedFailureMessage(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	m.handleCartAdded(cartAddedMsg{
		productID: "42",
		resp:      catalog.CartResponse{Success: false, Message: "out of stock"},
	})

	if m.status != "out of stock" {
		t.Errorf("status = %q, want the server message", m.status)
	}
	if m.statusKind != statusWarn {
		t.Error("failure not flagged as a warning")
	}
}

func TestHandleCartAddFailed(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	m.handleCartAddFailed(cartAddFailedMsg{productID: "42", err: errors.New("boom")})

	if m.status == "" || m.statusKind != statusWarn {
		t.Errorf("status = %q kind = %v, want a warning", m.status, m.statusKind)
	}
}
