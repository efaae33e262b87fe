// Package crelate provides the HTTP client for the Crelate ATS/CRM API.
// Every MCP tool dispatches through it: one authenticated outbound request
// per invocation, no retries, no state held between calls.
package crelate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bobmcallan/crelate-mcp/internal/crelate/common"
)

// DefaultBaseURL is the production Crelate API endpoint.
const DefaultBaseURL = "https://app.crelate.com/api3"

// Client issues authenticated requests to the Crelate API. The API key is
// injected into the query string of every request here and nowhere else;
// handlers never see or supply it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get performs a GET request against a relative endpoint path.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (any, error) {
	return c.request(ctx, http.MethodGet, endpoint, params, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body Body) (any, error) {
	return c.request(ctx, http.MethodPost, endpoint, nil, body)
}

// Put performs a PUT request with a JSON body. An empty body is sent as {}.
func (c *Client) Put(ctx context.Context, endpoint string, body Body) (any, error) {
	return c.request(ctx, http.MethodPut, endpoint, nil, body)
}

// request builds and executes one authenticated request. Endpoint is a
// relative path segment (e.g. "contacts", "jobs/123/contacts") with any ids
// already substituted by the caller.
func (c *Client) request(ctx context.Context, method, endpoint string, params Params, body Body) (any, error) {
	u, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}

	query := u.Query()
	for k, v := range params {
		query.Set(k, fmt.Sprintf("%v", v))
	}
	query.Set("api_key", c.apiKey)
	u.RawQuery = query.Encode()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Crelate API Request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("Crelate API Request Failed")
		return nil, fmt.Errorf("crelate request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Crelate API Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return result, nil
}
