// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"slices"
	"strconv"
)

// Resource is the terrain type of a tile. The zero value means unassigned.
type Resource string

const (
	NoResource Resource = ""
	Desert     Resource = "Desert"
	Wool       Resource = "Wool"
	Grain      Resource = "Grain"
	Forest     Resource = "Forest"
	Ore        Resource = "Ore"
	Brick      Resource = "Brick"
)

var resourceOrder = []Resource{Desert, Wool, Grain, Forest, Ore, Brick}

// Resources returns every assignable resource in display order.
func Resources() []Resource {
	return slices.Clone(resourceOrder)
}

// DiceNumber is a number token. Zero means no token.
type DiceNumber int

const NoNumber DiceNumber = 0

// 7 has no token.
var numberOrder = []DiceNumber{2, 3, 4, 5, 6, 8, 9, 10, 11, 12}

// Numbers returns every valid token value in ascending order.
func Numbers() []DiceNumber {
	return slices.Clone(numberOrder)
}

// Physical supply of tiles and tokens in the base game.
var (
	resourceLimits = map[Resource]int{
		Forest: 4,
		Wool:   4,
		Grain:  4,
		Ore:    3,
		Brick:  3,
		Desert: 1,
	}

	numberLimits = map[DiceNumber]int{
		2:  1,
		3:  2,
		4:  2,
		5:  2,
		6:  2,
		8:  2,
		9:  2,
		10: 2,
		11: 2,
		12: 1,
	}
)

// Valid reports whether r is one of the assignable resources.
func (r Resource) Valid() bool {
	_, ok := resourceLimits[r]
	return ok
}

// Limit returns how many tiles may carry r, or 0 for an unknown resource.
func (r Resource) Limit() int {
	return resourceLimits[r]
}

// ParseResource maps a document string onto a Resource.
func ParseResource(s string) (Resource, bool) {
	r := Resource(s)
	if !r.Valid() {
		return NoResource, false
	}
	return r, true
}

// Valid reports whether n is a token value.
func (n DiceNumber) Valid() bool {
	_, ok := numberLimits[n]
	return ok
}

// Limit returns how many tiles may carry n, or 0 for a value with no token.
func (n DiceNumber) Limit() int {
	return numberLimits[n]
}

func (n DiceNumber) String() string {
	return strconv.Itoa(int(n))
}
