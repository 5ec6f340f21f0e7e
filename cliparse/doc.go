// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are read first (caarlos0/env), then CLI flags override them.

# CLI Flags and Environment Variables

	-p            PORT             Server port (default: 3000)
	-d            DATABASE_URL     Database URL (default: board.db)
	-t            DATABASE_TYPE    sqlite or postgres (default: sqlite)
	-origin       FRONTEND_ORIGIN  Allowed CORS origin (default: http://localhost:5173)
	-log-level    LOG_LEVEL        debug|info|warn|error (default: info)
	-board-key    BOARD_KEY        Storage key (default: catan_board_config)
	-health-url   HEALTH_URL       Probe target (default: http://localhost:<port>)
	-healthcheck                   Probe /health and exit

# Validation

ParseFlags returns an error if:

  - an environment variable cannot be parsed
  - the port is outside 1-65535
  - the database type is not sqlite or postgres
  - the database URL is empty
*/
package cliparse
