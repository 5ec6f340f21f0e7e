// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

// TileCount is the number of hex slots on the board.
const TileCount = 19

// Position is an axial hex coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// positions lists the board's positions top row first, left to right.
// Tile indexes refer to this order.
var positions = [TileCount]Position{
	// y=2
	{X: -2, Y: 2}, {X: -1, Y: 2}, {X: 0, Y: 2},
	// y=1
	{X: -2, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	// y=0
	{X: -2, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	// y=-1
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1},
	// y=-2
	{X: 0, Y: -2}, {X: 1, Y: -2}, {X: 2, Y: -2},
}

// Layout returns the board positions in tile index order.
func Layout() [TileCount]Position {
	return positions
}

// ValidIndex reports whether i addresses a tile on the board.
func ValidIndex(i int) bool {
	return i >= 0 && i < TileCount
}
