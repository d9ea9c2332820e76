// Package client is a Go client for the WiFi login-attempt dashboard API.
package client

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

const defaultTimeout = 30 * time.Second

// Client calls a running dashboard over HTTP Basic authentication.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// New creates a new Client with the given configuration.
//
// Example:
//
//	c, err := client.New(client.Config{
//	    BaseURL:  "http://127.0.0.1:8000",
//	    Username: "admin",
//	    Password: os.Getenv("WIFI_DASHBOARD_PASSWORD"),
//	})
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &ValidationError{Field: "BaseURL", Message: "is required"}
	}

	parsedURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, &ValidationError{Field: "BaseURL", Message: "must be a valid URL"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, &ValidationError{Field: "BaseURL", Message: "must use http or https protocol"}
	}
	if parsedURL.Host == "" {
		return nil, &ValidationError{Field: "BaseURL", Message: "must include a host"}
	}

	if cfg.Username == "" {
		return nil, &ValidationError{Field: "Username", Message: "is required"}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// String returns a string representation with the password redacted.
func (c *Client) String() string {
	return fmt.Sprintf("DashboardClient(baseURL=%q, username=%q, password=***redacted***)", c.baseURL, c.username)
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Attempts lists login attempts matching q, newest first.
func (c *Client) Attempts(ctx context.Context, q AttemptQuery) ([]Attempt, error) {
	if q.Limit < 0 {
		return nil, &ValidationError{Field: "Limit", Message: "must not be negative"}
	}
	switch q.StatusFilter {
	case "", "success", "failed":
	default:
		return nil, &ValidationError{Field: "StatusFilter", Message: `must be "success" or "failed"`}
	}

	params := url.Values{}
	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}
	if q.StatusFilter != "" {
		params.Set("status_filter", q.StatusFilter)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var resp attemptsResponse
	if err := c.get(ctx, "/api/attempts", params, &resp); err != nil {
		return nil, err
	}
	return resp.Attempts, nil
}

// Stats returns the aggregate counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// HourlyStats returns per-hour counts for the last days days, oldest first.
func (c *Client) HourlyStats(ctx context.Context, days int) ([]HourlyBucket, error) {
	if days < 0 {
		return nil, &ValidationError{Field: "days", Message: "must not be negative"}
	}

	params := url.Values{"days": []string{strconv.Itoa(days)}}

	var resp hourlyStatsResponse
	if err := c.get(ctx, "/api/hourly-stats", params, &resp); err != nil {
		return nil, err
	}
	return resp.HourlyStats, nil
}

// Health calls the unauthenticated liveness endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.get(ctx, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// get performs an authenticated GET and decodes the JSON body into target.
func (c *Client) get(ctx context.Context, path string, params url.Values, target any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}

	return handleResponse(resp, target)
}

// handleResponse checks for errors and decodes JSON response.
func handleResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			errResp.Error = resp.Status
		}
		return newAPIError(resp.StatusCode, errResp.Code, errResp.Error)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
