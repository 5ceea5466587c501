package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ImageRef normalizes the two shapes the API uses for image fields: a plain
// URL string, or an object carrying a "url" property. Null and any other
// shape decode to an empty ref.
type ImageRef string

// UnmarshalJSON implements json.Unmarshaler.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ImageRef(s)
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = ImageRef(obj.URL)
		return nil
	}
	*r = ""
	return nil
}

// String returns the underlying URL, empty when the ref is absent.
func (r ImageRef) String() string { return string(r) }

// ID is a product or order identifier. The API emits identifiers as JSON
// numbers in some payloads and strings in others.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	*id = ""
	return nil
}

func (id ID) String() string { return string(id) }

// Money is a decimal price. Serializers emit it as either a JSON string or
// a number.
type Money string

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Money(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = Money(strconv.FormatFloat(f, 'f', 2, 64))
		return nil
	}
	*m = ""
	return nil
}

func (m Money) String() string { return string(m) }

// ProductSummary is the lightweight shape returned by list endpoints and
// embedded in a product's related strip.
type ProductSummary struct {
	ID        ID       `json:"id"`
	PK        ID       `json:"pk"`
	Name      string   `json:"name"`
	Price     Money    `json:"price"`
	Condition string   `json:"condition"`
	Category  string   `json:"category"`
	Location  string   `json:"location"`
	Image     ImageRef `json:"image"`
	Image2    ImageRef `json:"image_2"`
	Image3    ImageRef `json:"image_3"`
	Image4    ImageRef `json:"image_4"`
}

// Key returns the identifier, preferring id over pk the way the web client
// does.
func (p ProductSummary) Key() string {
	if p.ID != "" {
		return p.ID.String()
	}
	return p.PK.String()
}

// Images returns the summary's non-empty image URLs in order.
func (p ProductSummary) Images() []string {
	var urls []string
	for _, ref := range []ImageRef{p.Image, p.Image2, p.Image3, p.Image4} {
		if ref != "" {
			urls = append(urls, ref.String())
		}
	}
	return urls
}

// ProductRecord is the full detail payload for one catalog item. Every
// descriptive field is optional; consumers must run values through
// IsMeaningful before rendering them.
type ProductRecord struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Price       Money    `json:"price"`
	Condition   string   `json:"condition"`
	Category    string   `json:"category"`
	Image       ImageRef `json:"image"`
	Image2      ImageRef `json:"image_2"`
	Image3      ImageRef `json:"image_3"`
	Image4      ImageRef `json:"image_4"`
	Stock       *int     `json:"stock"`
	Brand       string   `json:"brand"`
	BrandModel  string   `json:"brand_model"`
	Color       string   `json:"color"`
	StorageRAM  string   `json:"storage_ram"`
	Network     string   `json:"network"`
	Battery     string   `json:"battery"`
	Camera      string   `json:"camera"`
	Screen      string   `json:"screen"`
	Processor   string   `json:"processor"`
	OS          string   `json:"os"`
	Accessories string   `json:"accessories"`
	Warranty    string   `json:"warranty"`
	Notes       string   `json:"optional_details"`
	Description string   `json:"description"`
	Available   *bool    `json:"available"`
	Location    string   `json:"location"`

	// Related is filled from the envelope, not the product body.
	Related []ProductSummary `json:"-"`
}

// BrandLabel prefers brand over brand_model, matching the detail page.
func (p ProductRecord) BrandLabel() string {
	if IsMeaningful(p.Brand) {
		return p.Brand
	}
	return p.BrandModel
}

// MainImage returns the primary image URL, empty when absent.
func (p ProductRecord) MainImage() string { return p.Image.String() }

// Thumbs returns the secondary image URLs in order, skipping empties.
func (p ProductRecord) Thumbs() []string {
	var urls []string
	for _, ref := range []ImageRef{p.Image2, p.Image3, p.Image4} {
		if ref != "" {
			urls = append(urls, ref.String())
		}
	}
	return urls
}

// productEnvelope mirrors the single-product endpoint payload.
type productEnvelope struct {
	Product *ProductRecord   `json:"product"`
	Related []ProductSummary `json:"related"`
}

// CartFields carries the identifying fields posted to the cart endpoint.
type CartFields struct {
	ProductID string
	Name      string
	Price     string
	Condition string
	Category  string
	ImageURL  string
}

// CartResponse mirrors the cart-mutation endpoint payload.
type CartResponse struct {
	Success   bool   `json:"success"`
	CartCount *int   `json:"cart_count"`
	Message   string `json:"message"`
}

// OrderSummary is one entry from the orders endpoint. Rows are tagged by
// OrderID so push updates can patch their status in place.
type OrderSummary struct {
	OrderID   ID     `json:"order_id"`
	Reference string `json:"reference"`
	Total     Money  `json:"total"`
	Status    string `json:"delivery_status"`
	PlacedAt  string `json:"created_at"`
}

// decodeSummaries accepts both list payload shapes: a bare JSON array or a
// paginated envelope with a "results" member.
func decodeSummaries(raw json.RawMessage) ([]ProductSummary, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []ProductSummary
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var page struct {
		Results []ProductSummary `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
