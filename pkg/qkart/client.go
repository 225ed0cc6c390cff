// Package qkart is a Go client for the QKart REST API. Authenticated calls
// take an explicit *Session; there is no ambient login state.
package qkart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Product mirrors a catalog entry as served by the API.
type Product struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Cost     int64  `json:"cost"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"image"`
}

// CartLine is a (product, quantity) pair in the user's cart.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// Address is a stored shipping address.
type Address struct {
	ID   string `json:"_id"`
	Text string `json:"address"`
}

// ErrAlreadyInCart is returned by AddToCart when the product is already in
// the cart. Changing the quantity must go through SetCartQuantity; the add
// affordance never increments.
var ErrAlreadyInCart = errors.New("item already in cart")

// APIError is a non-2xx response carrying the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qkart: %d %s", e.StatusCode, e.Message)
}

// Client calls the QKart API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a Client for the given base URL, e.g. "http://localhost:8082".
// Pass nil to use a default HTTP client with a 10s timeout.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog entry.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/"+url.PathEscape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchProducts filters the catalog by a free-text query. The endpoint's
// empty-result 404 is not an error here; it yields an empty slice. An empty
// query is a valid search returning the unfiltered catalog.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	path := "/api/v1/products/search?value=" + url.QueryEscape(query)
	var products []Product
	err := c.do(ctx, http.MethodGet, path, nil, nil, &products)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return []Product{}, nil
		}
		return nil, err
	}
	return products, nil
}

// Cart fetches the session user's cart lines.
func (c *Client) Cart(ctx context.Context, sess *Session) ([]CartLine, error) {
	var lines []CartLine
	if err := c.do(ctx, http.MethodGet, "/api/v1/cart", sess, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetCartQuantity overwrites the quantity of a product in the cart.
// A quantity of zero removes the line.
func (c *Client) SetCartQuantity(ctx context.Context, sess *Session, productID string, qty int) ([]CartLine, error) {
	body := map[string]interface{}{"productId": productID, "qty": qty}
	var lines []CartLine
	if err := c.do(ctx, http.MethodPost, "/api/v1/cart", sess, body, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart puts one unit of the product in the cart. When the product is
// already present it refuses with ErrAlreadyInCart so the caller can surface
// the warning instead of incrementing.
func (c *Client) AddToCart(ctx context.Context, sess *Session, productID string) ([]CartLine, error) {
	lines, err := c.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if line.ProductID == productID {
			return nil, ErrAlreadyInCart
		}
	}
	return c.SetCartQuantity(ctx, sess, productID, 1)
}

// Checkout submits the order against the selected address.
func (c *Client) Checkout(ctx context.Context, sess *Session, addressID string) error {
	body := map[string]string{"addressId": addressID}
	return c.do(ctx, http.MethodPost, "/api/v1/cart/checkout", sess, body, nil)
}

// Addresses fetches the session user's address list.
func (c *Client) Addresses(ctx context.Context, sess *Session) ([]Address, error) {
	var addresses []Address
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/addresses", sess, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress appends a new address and returns the updated list.
func (c *Client) AddAddress(ctx context.Context, sess *Session, text string) ([]Address, error) {
	body := map[string]string{"address": text}
	var addresses []Address
	if err := c.do(ctx, http.MethodPost, "/api/v1/user/addresses", sess, body, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// DeleteAddress removes an address by id and returns the updated list.
func (c *Client) DeleteAddress(ctx context.Context, sess *Session, addressID string) ([]Address, error) {
	var addresses []Address
	if err := c.do(ctx, http.MethodDelete, "/api/v1/user/addresses/"+url.PathEscape(addressID), sess, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) do(ctx context.Context, method, path string, sess *Session, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: messageFrom(data)}
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

func messageFrom(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}
