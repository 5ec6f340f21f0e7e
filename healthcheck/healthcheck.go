// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package healthcheck

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/catan-builder/models"
)

// Unreachable is the status reported when the service cannot be queried.
const Unreachable = "unreachable"

const defaultTimeout = 5 * time.Second

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
}

// Status queries GET {BaseURL}/health and returns the reported status.
// Any transport failure, non-2xx response or undecodable body yields Unreachable.
func (c *Client) Status(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		slog.Warn("invalid health url", "url", c.BaseURL, "error", err)
		return Unreachable
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		slog.Warn("health check failed", "url", c.BaseURL, "error", err)
		return Unreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("health check failed", "url", c.BaseURL, "status", resp.StatusCode)
		return Unreachable
	}

	var body models.HealthResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil || body.Status == "" {
		slog.Warn("health check returned unexpected body", "url", c.BaseURL, "error", err)
		return Unreachable
	}

	return body.Status
}
