package ui

import (
	"fmt"

	"github.com/liontech/storefront/internal/catalog"
)

// Placeholder used when a product carries no image of its own.
const defaultImageURL = "/static/website/images/default-image.svg"

// relatedLimit bounds the related-products strip.
const relatedLimit = 8

// DetailRow is one label/value line in the descriptive table. Rows exist
// only for meaningful values; an absent field produces no row at all.
type DetailRow struct {
	Label string
	Value string
}

// RelatedCard is one entry in the related-products strip.
type RelatedCard struct {
	ID    string
	Name  string
	Price string
	Image string
	URL   string
}

// FormFields are the hidden checkout sub-form values. They identify the
// product to the cart endpoint and must be filled before the submit
// control is enabled.
type FormFields struct {
	ProductID string
	Name      string
	Price     string
	Condition string
	Category  string
	ImageURL  string
}

// RenderPlan is the canonical projection of one ProductRecord. Both the
// primary and the compact render targets populate themselves from the same
// plan; neither reads the record directly.
type RenderPlan struct {
	ID          string
	Title       string
	Price       string
	MainImage   string
	Thumbs      []string
	Rows        []DetailRow
	Description string
	Related     []RelatedCard
	Form        FormFields
}

// buildRenderPlan projects a product record into its render plan. The
// projection is pure and tolerant of partial data: fields that are absent
// or placeholders simply do not appear.
func buildRenderPlan(p catalog.ProductRecord, productURL func(id string) string) RenderPlan {
	plan := RenderPlan{
		ID:        p.ID.String(),
		MainImage: p.MainImage(),
		Thumbs:    p.Thumbs(),
	}

	if catalog.IsMeaningful(p.Name) {
		plan.Title = p.Name
	}
	if catalog.IsMeaningful(p.Price.String()) {
		plan.Price = "$" + p.Price.String()
	}

	addRow := func(label, value string) {
		if !catalog.IsMeaningful(value) {
			return
		}
		plan.Rows = append(plan.Rows, DetailRow{Label: label, Value: value})
	}

	addRow("Category", p.Category)
	addRow("Condition", p.Condition)
	addRow("Brand/Model", p.BrandLabel())
	if p.Stock != nil {
		addRow("Stock", formatStock(*p.Stock))
	}
	addRow("Delivery", deliveryEstimate(p.Location))
	addRow("Color", p.Color)
	addRow("Storage / RAM", p.StorageRAM)
	addRow("Network", p.Network)
	addRow("Battery", p.Battery)
	addRow("Camera", p.Camera)
	addRow("Screen", p.Screen)
	addRow("Processor", p.Processor)
	addRow("OS", p.OS)
	addRow("Accessories", p.Accessories)
	addRow("Warranty", p.Warranty)
	addRow("Additional Details", p.Notes)
	if p.Available != nil {
		if *p.Available {
			addRow("Available", "Yes")
		} else {
			addRow("Available", "No")
		}
	}

	if catalog.IsMeaningful(p.Description) {
		plan.Description = p.Description
	}

	for _, rel := range p.Related {
		if len(plan.Related) >= relatedLimit {
			break
		}
		image := rel.Image.String()
		if image == "" {
			image = defaultImageURL
		}
		link := ""
		if productURL != nil {
			link = productURL(rel.Key())
		}
		plan.Related = append(plan.Related, RelatedCard{
			ID:    rel.Key(),
			Name:  rel.Name,
			Price: "$" + rel.Price.String(),
			Image: image,
			URL:   link,
		})
	}

	plan.Form = buildFormFields(p)
	return plan
}

// buildFormFields fills the checkout sub-form, substituting safe defaults
// so the cart endpoint never sees empty identifying fields.
func buildFormFields(p catalog.ProductRecord) FormFields {
	fields := FormFields{
		ProductID: p.ID.String(),
		Name:      p.Name,
		Price:     p.Price.String(),
		Condition: p.Condition,
		Category:  p.Category,
		ImageURL:  p.MainImage(),
	}
	if fields.ProductID == "" {
		fields.ProductID = "0"
	}
	if fields.Name == "" {
		fields.Name = "Unknown Product"
	}
	if fields.Price == "" {
		fields.Price = "0.00"
	}
	if fields.Condition == "" {
		fields.Condition = "N/A"
	}
	if fields.Category == "" {
		fields.Category = "Uncategorized"
	}
	if fields.ImageURL == "" {
		fields.ImageURL = defaultImageURL
	}
	return fields
}

// formatStock renders the stock row value. Zero is a real value, distinct
// from an absent stock field.
func formatStock(stock int) string {
	if stock == 0 {
		return "Out of stock"
	}
	return fmt.Sprintf("%d available", stock)
}

// deliveryEstimate maps the location tier to a delivery promise. An empty
// tier returns an empty string, which produces no row.
func deliveryEstimate(location string) string {
	switch location {
	case "":
		return ""
	case "local":
		return "Tomorrow"
	case "exotic":
		return "2 Weeks"
	default:
		return "Standard"
	}
}
