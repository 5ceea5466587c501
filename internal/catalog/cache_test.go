package catalog

import "testing"

func TestCache_PutOverwritesAndSkipsBlankIDs(t *testing.T) {
	cache := NewCache()

	cache.Put([]ProductSummary{
		{ID: "1", Name: "Galaxy S21", Price: "100"},
		{Name: "no id"},
	})
	if cache.Len() != 1 {
		t.Fatalf("len = %d, want 1", cache.Len())
	}

	// A fresh query cycle overwrites, never merges.
	cache.Put([]ProductSummary{{ID: "1", Name: "Galaxy S21", Price: "90"}})
	item, ok := cache.Get("1")
	if !ok {
		t.Fatal("expected cached product 1")
	}
	if item.Price.String() != "90" {
		t.Fatalf("price = %q, want overwritten 90", item.Price)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("unexpected hit for missing id")
	}
}
