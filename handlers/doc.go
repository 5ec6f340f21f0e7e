// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the board builder API.

# Handler Types

  - BoardHandler: board state, tile assignment, form options, counts, export

Handlers are created with the store they serve:

	boardHandler := handlers.NewBoardHandler(boardStore)

# Assigning Tiles

	PUT /board/tiles/{index}  {"type":"Forest","diceNumber":6}

The store re-validates every assignment against the supply limits, whatever
the frontend already disabled. Responses:

  - 200 with the updated board
  - 400 for a bad index, unknown type, or missing/invalid number
  - 409 when a supply limit would be exceeded; the body names the limit:

	{"error":"Conflict","message":"cannot add more tiles with number 6: limit 2",
	 "violation":{"kind":"number","type":"Forest","diceNumber":6,"limit":2}}

A Desert ignores diceNumber and is stored with 0.

# Form Options

GET /board/tiles/{index}/options returns the resources and numbers the tile
may take. The type query parameter is the resource currently selected in the
form; numbers are empty for a Desert. Empty tiles default to Wool and 6.
*/
package handlers
