// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - AssignTileRequest: type, diceNumber

# Response Types

  - BoardResponse: tiles, assigned
  - Tile: index, x, y, type, diceNumber
  - TileOptionsResponse: tile, pending_type, resources, numbers, default_type, default_dice_number
  - CountsResponse: resources and numbers with used/limit
  - HealthResponse: status
  - ErrorResponse: error, message, violation

# JSON Conventions

Tile fields use the same names as the persisted board document (type,
diceNumber) so the frontend can share one tile shape. Everything else is
snake_case.

An empty tile has type "" and diceNumber 0. A Desert has diceNumber 0.
*/
package models
