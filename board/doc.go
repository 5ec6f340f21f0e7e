// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board defines the hex board and the supply constraints on it.

# Layout

The board has 19 fixed positions in axial coordinates, listed in Layout from
the top row down. A tile index is an index into Layout and never changes.
Layout, Resources and Numbers return copies; the tables themselves are fixed.

# Supply Limits

Resources and number tokens are limited by the physical supply of the base game:

	Forest 4, Wool 4, Grain 4, Ore 3, Brick 3, Desert 1
	2 and 12 once, 3-6 and 8-11 twice, no 7

Nineteen resource tiles fill the board; a Desert carries no token, leaving 18.

# Constraint Engine

All checks are pure functions over a Board value:

	counts := board.CountsByResource(b)
	ok := board.CanAssignResource(b, board.Forest, 3)
	nums := board.AvailableNumbers(b, 3, board.Forest)
	err := board.Validate(b, 3, board.Forest, 6)

A tile's current resource or number is never counted against itself, so
re-submitting a tile unchanged always validates.

Validate returns a *ConstraintViolation when a limit would be exceeded:

	var cv *board.ConstraintViolation
	if errors.As(err, &cv) {
		// cv.Kind, cv.Resource, cv.Number, cv.Limit
	}
*/
package board
