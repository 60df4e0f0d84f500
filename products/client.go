package products

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production products API.
const DefaultBaseURL = "https://api.trustudsel.com"

// Client is a thin REST client for the products API.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil {
			c.baseURL = u
		}
	}
}

// NewClient creates a products API client.
func NewClient(opts ...Option) *Client {
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http:    http.DefaultClient,
		baseURL: u,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search queries the products API. Filters and sort travel to the server as
// comma-joined query parameters, matching the shape the mobile client sends.
func (c *Client) Search(ctx context.Context, params SearchParams, filters []string, sortOpt string) (SearchResult, error) {
	q := map[string]string{}
	if params.Query != "" {
		q["query"] = params.Query
	}
	if params.University != "" {
		q["university"] = params.University
	}
	if params.City != "" {
		q["city"] = params.City
	}
	if params.Zipcode != "" {
		q["zipcode"] = params.Zipcode
	}
	if params.Category != "" {
		q["category"] = params.Category
	}
	if params.Page > 0 {
		q["page"] = strconv.Itoa(params.Page)
	}
	if params.Size > 0 {
		q["size"] = strconv.Itoa(params.Size)
	}
	if len(filters) > 0 {
		q["filters"] = strings.Join(filters, ",")
	}
	if sortOpt != "" {
		q["sortBy"] = sortOpt
	}

	var result SearchResult
	if err := c.doJSON(ctx, "/api/products/search", q, &result); err != nil {
		return SearchResult{}, err
	}
	return result, nil
}

func (c *Client) doJSON(ctx context.Context, p string, q map[string]string, out any) error {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)
	qq := u.Query()
	for k, v := range q {
		qq.Set(k, v)
	}
	u.RawQuery = qq.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: %s: %s", p, resp.Status, string(b))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
