// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package healthcheck queries a running server's /health endpoint.
//
// The client never returns an error: callers only get the reported status
// string or Unreachable. main uses it for the -healthcheck probe mode.
package healthcheck
