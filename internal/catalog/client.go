package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TokenSource supplies the current session token, if any, for outbound
// Authorization headers.
type TokenSource interface {
	Token() string
}

// Client wraps interactions with the upstream product API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient constructs a new client. tokens may be nil for unauthenticated use.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// ListProducts fetches the full product list, optionally limited and sorted
// by id in the given direction.
func (c *Client) ListProducts(ctx context.Context, limit int, sort SortOrder) ([]Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if sort != "" {
		q.Set("sort", string(sort))
	}
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCategory fetches products for one category.
func (c *Client) ListProductsByCategory(ctx context.Context, category string, sort SortOrder) ([]Product, error) {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", string(sort))
	}
	var products []Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by its upstream id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches the known category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProduct submits a new product and returns the upstream record.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update to the product with the given
// upstream id and returns the upstream's view of the result.
func (c *Client) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product with the given upstream id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// LoginResponse is the upstream authentication result.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an opaque token at the upstream API.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	payload := map[string]string{"username": username, "password": password}
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// do executes one request and normalises every failure into *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Message: upstreamMessage(resp), Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &APIError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// upstreamMessage extracts a human-readable message from an error response.
// The upstream replies with either a JSON object carrying "message" or a
// bare string body.
func upstreamMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			return payload.Message
		}
		var text string
		if json.Unmarshal(data, &text) == nil && text != "" {
			return text
		}
	}
	if resp.StatusCode == http.StatusNotFound {
		return "Not Found"
	}
	return fmt.Sprintf("upstream returned status %d", resp.StatusCode)
}
