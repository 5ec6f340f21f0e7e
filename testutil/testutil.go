// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/catan-builder/board"
	"github.com/danielhkuo/catan-builder/cliparse"
	"github.com/danielhkuo/catan-builder/db"
	"github.com/danielhkuo/catan-builder/persist"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a config for tests
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		FrontendOrigin: "http://localhost:5173",
		LogLevel:       "info",
		BoardKey:       persist.DefaultKey,
		HealthURL:      "http://localhost:8080",
	}
}

// NewTestRepository returns a repository backed by a fresh test database
func NewTestRepository(t *testing.T) *persist.Repository {
	t.Helper()
	return persist.NewRepository(db.NewKV(SetupTestDB(t)), persist.DefaultKey)
}

// SaveTestBoard writes b to the repository, failing the test on error
func SaveTestBoard(t *testing.T, repo *persist.Repository, b board.Board) {
	t.Helper()
	if err := repo.Save(context.Background(), b); err != nil {
		t.Fatalf("Failed to save test board: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
