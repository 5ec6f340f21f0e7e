// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the board builder API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(boardStore)

CORS is applied by the caller around the returned mux.

# Endpoints

Health:

	GET /health -> {"status":"ok"}

Board state:

	GET  /board               - Current board
	PUT  /board/tiles/{index} - Assign resource and number to a tile
	POST /board/clear         - Empty every tile

Tile form support:

	GET /board/tiles/{index}/options?type=Forest - Enabled resources and numbers
	GET /board/counts                            - Used/limit per resource and number

Download:

	GET /board/export?format=json|yaml - board_config.json or board_config.yaml
*/
package router
