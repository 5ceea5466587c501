package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the catalog and cart operations the UI depends on. It is
// implemented by *Client and can be faked in tests.
type Fetcher interface {
	SearchProducts(ctx context.Context, search string) ([]ProductSummary, error)
	FetchProducts(ctx context.Context, query Query) ([]ProductSummary, error)
	FetchProduct(ctx context.Context, id string) (*ProductRecord, error)
	FetchOrders(ctx context.Context) ([]OrderSummary, error)
	AddToCart(ctx context.Context, fields CartFields) (CartResponse, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the storefront HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:8000"
	defaultUserAgent = "storefront/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client from the configured API base (host:port or full
// URL).
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Query configures paginated catalog requests.
type Query struct {
	Page   int
	Search string
	Filter string
}

// SearchProducts runs a free-text live search.
func (c *Client) SearchProducts(ctx context.Context, search string) ([]ProductSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("search", search)
	rel := &url.URL{Path: "/live-search-products/", RawQuery: values.Encode()}
	var raw json.RawMessage
	if err := c.doURL(ctx, http.MethodGet, rel, &raw); err != nil {
		return nil, err
	}
	return decodeSummaries(raw)
}

// FetchProducts retrieves one page of the catalog, optionally narrowed by
// free-text search and category filter.
func (c *Client) FetchProducts(ctx context.Context, query Query) ([]ProductSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("search", query.Search)
	values.Set("filter", query.Filter)
	rel := &url.URL{Path: "/api/products/", RawQuery: values.Encode()}
	var raw json.RawMessage
	if err := c.doURL(ctx, http.MethodGet, rel, &raw); err != nil {
		return nil, err
	}
	return decodeSummaries(raw)
}

// FetchProduct retrieves one product's full detail payload along with its
// related strip. A payload without a product body is malformed.
func (c *Client) FetchProduct(ctx context.Context, id string) (*ProductRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, fmt.Errorf("product id required")
	}
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/product/"+url.PathEscape(trimmed)+"/", &envelope); err != nil {
		return nil, err
	}
	if envelope.Product == nil {
		return nil, fmt.Errorf("product %s: payload has no product body", trimmed)
	}
	record := *envelope.Product
	record.Related = envelope.Related
	return &record, nil
}

// FetchOrders retrieves the current customer's order history.
func (c *Client) FetchOrders(ctx context.Context) ([]OrderSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload struct {
		Orders []OrderSummary `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders/", &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

// AddToCart submits the identifying fields as a form-style POST.
func (c *Client) AddToCart(ctx context.Context, fields CartFields) (CartResponse, error) {
	if c == nil {
		return CartResponse{}, fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set("product_id", fields.ProductID)
	form.Set("name", fields.Name)
	form.Set("price", fields.Price)
	form.Set("condition", fields.Condition)
	form.Set("category", fields.Category)
	form.Set("image_url", fields.ImageURL)

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: "/addProduct_to_cart/"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return CartResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return CartResponse{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return CartResponse{}, fmt.Errorf("cart endpoint returned status %d", resp.StatusCode)
	}
	var payload CartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return CartResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// ProductURL returns the canonical product page, used as the degraded
// fallback when the detail payload cannot be loaded.
func (c *Client) ProductURL(id string) string {
	rel := &url.URL{Path: "/product/" + strings.TrimSpace(id) + "/"}
	return c.baseURL.ResolveReference(rel).String()
}

// UpdatesURL derives the push channel address from the API origin.
func (c *Client) UpdatesURL() string {
	ws := *c.baseURL
	if ws.Scheme == "https" {
		ws.Scheme = "wss"
	} else {
		ws.Scheme = "ws"
	}
	ws.Path = "/ws/updates/"
	return ws.String()
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
