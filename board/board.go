// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

// Tile is one hex slot. Number is NoNumber whenever Resource is NoResource or Desert.
type Tile struct {
	Position Position
	Resource Resource
	Number   DiceNumber
}

// Empty reports whether the tile has no resource assigned.
func (t Tile) Empty() bool {
	return t.Resource == NoResource
}

// Board is the full set of tiles in layout order. It is a value type:
// copying a Board copies every tile.
type Board [TileCount]Tile

// New returns a board with every position empty.
func New() Board {
	var b Board
	for i, pos := range positions {
		b[i] = Tile{Position: pos}
	}
	return b
}

// Assigned returns the number of tiles that carry a resource.
func (b Board) Assigned() int {
	n := 0
	for _, t := range b {
		if !t.Empty() {
			n++
		}
	}
	return n
}

// With returns a copy of b where tile i holds r and n. Desert always gets NoNumber.
// It does not check supply limits; use Validate first.
func (b Board) With(i int, r Resource, n DiceNumber) Board {
	if r == Desert {
		n = NoNumber
	}
	b[i].Resource = r
	b[i].Number = n
	return b
}
