package ui

import (
	"fmt"
	"testing"

	"github.com/liontech/storefront/internal/catalog"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestBuildRenderPlanFiltersPlaceholders(t *testing.T) {
	record := catalog.ProductRecord{
		ID:        "42",
		Name:      "Galaxy S21",
		Price:     "19.99",
		Condition: "Refurbished",
		Category:  "phones",
		Color:     "N/A",
		Battery:   "none",
		Network:   "-",
		Camera:    "108MP",
	}

	plan := buildRenderPlan(record, nil)

	if plan.Title != "Galaxy S21" {
		t.Errorf("Title = %q", plan.Title)
	}
	if plan.Price != "$19.99" {
		t.Errorf("Price = %q, want $19.99", plan.Price)
	}

	labels := map[string]string{}
	for _, row := range plan.Rows {
		labels[row.Label] = row.Value
	}
	for _, absent := range []string{"Color", "Battery", "Network"} {
		if _, ok := labels[absent]; ok {
			t.Errorf("placeholder row %q should not appear", absent)
		}
	}
	if labels["Camera"] != "108MP" {
		t.Errorf("Camera row = %q", labels["Camera"])
	}
	if labels["Category"] != "phones" {
		t.Errorf("Category row = %q", labels["Category"])
	}
}

func TestBuildRenderPlanStock(t *testing.T) {
	tests := []struct {
		name  string
		stock *int
		want  string // empty means no row at all
	}{
		{"absent", nil, ""},
		{"zero is out of stock", intPtr(0), "Out of stock"},
		{"positive", intPtr(5), "5 available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildRenderPlan(catalog.ProductRecord{ID: "1", Stock: tt.stock}, nil)
			var got string
			for _, row := range plan.Rows {
				if row.Label == "Stock" {
					got = row.Value
				}
			}
			if got != tt.want {
				t.Errorf("stock row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRenderPlanAvailability(t *testing.T) {
	plan := buildRenderPlan(catalog.ProductRecord{ID: "1", Available: boolPtr(false)}, nil)
	found := false
	for _, row := range plan.Rows {
		if row.Label == "Available" {
			found = true
			if row.Value != "No" {
				t.Errorf("Available = %q, want No", row.Value)
			}
		}
	}
	if !found {
		t.Error("Available row missing for explicit false")
	}

	plan = buildRenderPlan(catalog.ProductRecord{ID: "1"}, nil)
	for _, row := range plan.Rows {
		if row.Label == "Available" {
			t.Error("Available row should not appear when the field is absent")
		}
	}
}

func TestDeliveryEstimate(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"", ""},
		{"local", "Tomorrow"},
		{"exotic", "2 Weeks"},
		{"warehouse-7", "Standard"},
	}
	for _, tt := range tests {
		if got := deliveryEstimate(tt.location); got != tt.want {
			t.Errorf("deliveryEstimate(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestBuildRenderPlanRelatedBounded(t *testing.T) {
	record := catalog.ProductRecord{ID: "1"}
	for i := 0; i < relatedLimit+4; i++ {
		record.Related = append(record.Related, catalog.ProductSummary{
			ID:    catalog.ID(fmt.Sprintf("r%d", i)),
			Name:  fmt.Sprintf("Related %d", i),
			Price: "5.00",
		})
	}

	plan := buildRenderPlan(record, func(id string) string { return "/product/" + id + "/" })

	if len(plan.Related) != relatedLimit {
		t.Fatalf("related = %d cards, want %d", len(plan.Related), relatedLimit)
	}
	if plan.Related[0].URL != "/product/r0/" {
		t.Errorf("related URL = %q", plan.Related[0].URL)
	}
	if plan.Related[0].Image != defaultImageURL {
		t.Errorf("related image = %q, want default", plan.Related[0].Image)
	}
}

func TestBuildRenderPlanRelatedEmpty(t *testing.T) {
	plan := buildRenderPlan(catalog.ProductRecord{ID: "1"}, nil)
	if len(plan.Related) != 0 {
		t.Errorf("related = %d cards, want none", len(plan.Related))
	}
}

func TestBuildFormFieldsDefaults(t *testing.T) {
	form := buildFormFields(catalog.ProductRecord{})

	if form.ProductID != "0" {
		t.Errorf("ProductID = %q, want 0", form.ProductID)
	}
	if form.Name != "Unknown Product" {
		t.Errorf("Name = %q", form.Name)
	}
	if form.Price != "0.00" {
		t.Errorf("Price = %q", form.Price)
	}
	if form.Condition != "N/A" {
		t.Errorf("Condition = %q", form.Condition)
	}
	if form.Category != "Uncategorized" {
		t.Errorf("Category = %q", form.Category)
	}
	if form.ImageURL != defaultImageURL {
		t.Errorf("ImageURL = %q", form.ImageURL)
	}
}

func TestBuildFormFieldsFilled(t *testing.T) {
	form := buildFormFields(catalog.ProductRecord{
		ID:        "42",
		Name:      "Galaxy S21",
		Price:     "19.99",
		Condition: "New",
		Category:  "phones",
		Image:     "/media/p42.jpg",
	})

	if form.ProductID != "42" || form.Name != "Galaxy S21" || form.Price != "19.99" {
		t.Errorf("form = %+v", form)
	}
	if form.ImageURL != "/media/p42.jpg" {
		t.Errorf("ImageURL = %q", form.ImageURL)
	}
}
