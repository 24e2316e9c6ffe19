// Package backend is the live session's HTTP client for the directory endpoints.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"employee-directory/internal/api"
)

const (
	// RequestedWithHeader marks script-driven requests so /search answers with JSON.
	RequestedWithHeader = "X-Requested-With"
	RequestedWithValue  = "XMLHttpRequest"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SearchURL builds the search request URL for query, escaped verbatim.
func (c *Client) SearchURL(query string) string {
	return c.baseURL + "/search?q=" + url.QueryEscape(query)
}

// Search returns the employees matching query in server order. An empty query
// asks for every employee.
func (c *Client) Search(ctx context.Context, query string) ([]api.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	req.Header.Set(RequestedWithHeader, RequestedWithValue)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("Search: unexpected status %d", resp.StatusCode)
	}

	var payload api.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("Search: decode: %w", err)
	}
	if payload.Employees == nil {
		payload.Employees = []api.Employee{}
	}
	return payload.Employees, nil
}
