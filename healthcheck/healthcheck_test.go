// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package healthcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected string
	}{
		{
			name: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/health" {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"ok"}`))
			},
			expected: "ok",
		},
		{
			name: "degraded status passed through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"degraded"}`))
			},
			expected: "degraded",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"ok"}`))
			},
			expected: Unreachable,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("catan-builder API v1"))
			},
			expected: Unreachable,
		},
		{
			name: "missing status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
			expected: Unreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			got := NewClient(server.URL + "/").Status(context.Background())
			if got != tt.expected {
				t.Errorf("Expected status %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestStatus_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if got := NewClient(url).Status(context.Background()); got != Unreachable {
		t.Errorf("Expected %q, got %q", Unreachable, got)
	}
}

func TestStatus_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if got := NewClient(server.URL).Status(ctx); got != Unreachable {
		t.Errorf("Expected %q, got %q", Unreachable, got)
	}
}

func TestStatus_BadURL(t *testing.T) {
	if got := NewClient("://nope").Status(context.Background()); got != Unreachable {
		t.Errorf("Expected %q, got %q", Unreachable, got)
	}
}
