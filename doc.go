// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Catan Builder API server.

Catan Builder lets a user lay out a 19-tile hex board by giving each tile a
resource type and a dice number. Assignments are checked against the base
game's tile and token supply, and the board is saved after every change.

# Starting the Server

Every setting has a default, so the server starts with no configuration and
keeps its board in a local SQLite file:

	go run .

Settings come from the environment (a .env file is loaded if present):

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -t sqlite -d board.db

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): File path or connection string (default: board.db)
  - FRONTEND_ORIGIN (-origin): Allowed CORS origin (default: http://localhost:5173)
  - BOARD_KEY (-board-key): Storage key of the board document (default: catan_board_config)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - HEALTH_URL (-health-url): Base URL for -healthcheck (default: http://localhost:<port>)

# Health Probe

With -healthcheck the binary queries HEALTH_URL/health and exits 0 when the
server reports "ok", 1 otherwise. No server is started.

# Architecture

  - board: Layout, supply limits and the constraint engine
  - store: The live board, serialised mutations, save on change
  - persist: Board document codec, JSON/YAML export, repository
  - db: SQL key-value table on SQLite or PostgreSQL
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - healthcheck: /health client
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
