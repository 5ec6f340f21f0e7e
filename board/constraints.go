// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex    = errors.New("tile index out of range")
	ErrUnknownResource = errors.New("unknown resource type")
	ErrInvalidNumber   = errors.New("invalid dice number")
)

// LimitKind says which supply a ConstraintViolation ran out of.
type LimitKind string

const (
	ResourceLimit LimitKind = "resource"
	NumberLimit   LimitKind = "number"
)

// ConstraintViolation is returned when an assignment would exceed a supply limit.
type ConstraintViolation struct {
	Kind     LimitKind
	Resource Resource
	Number   DiceNumber
	Limit    int
}

func (e *ConstraintViolation) Error() string {
	if e.Kind == NumberLimit {
		return fmt.Sprintf("cannot add more tiles with number %d: limit %d", e.Number, e.Limit)
	}
	return fmt.Sprintf("cannot add more %s tiles: limit %d", e.Resource, e.Limit)
}

// Counts are recomputed from a full scan on every call.

// CountsByResource counts the tiles holding each resource. Every resource is present in
// the result, zero included.
func CountsByResource(b Board) map[Resource]int {
	counts := make(map[Resource]int, len(resourceOrder))
	for _, r := range resourceOrder {
		counts[r] = 0
	}
	for _, t := range b {
		if t.Resource.Valid() {
			counts[t.Resource]++
		}
	}
	return counts
}

// CountsByNumber counts the tiles holding each dice number, skipping empty tokens.
func CountsByNumber(b Board) map[DiceNumber]int {
	counts := make(map[DiceNumber]int, len(numberOrder))
	for _, n := range numberOrder {
		counts[n] = 0
	}
	for _, t := range b {
		if t.Number != NoNumber && t.Number.Valid() {
			counts[t.Number]++
		}
	}
	return counts
}

// CanAssignResource reports whether tile i may hold r. The tile's own current
// resource is not counted against it, so re-selecting it always succeeds.
func CanAssignResource(b Board, r Resource, i int) bool {
	if !ValidIndex(i) || !r.Valid() {
		return false
	}
	used := CountsByResource(b)[r]
	if b[i].Resource == r {
		used--
	}
	return used < r.Limit()
}

// CanAssignNumber reports whether tile i may hold n, excluding the tile's own token.
func CanAssignNumber(b Board, n DiceNumber, i int) bool {
	if !ValidIndex(i) || !n.Valid() {
		return false
	}
	used := CountsByNumber(b)[n]
	if b[i].Number == n {
		used--
	}
	return used < n.Limit()
}

// AvailableResources lists, in display order, the resources tile i may take.
func AvailableResources(b Board, i int) []Resource {
	out := make([]Resource, 0, len(resourceOrder))
	for _, r := range resourceOrder {
		if CanAssignResource(b, r, i) {
			out = append(out, r)
		}
	}
	return out
}

// AvailableNumbers lists the numbers tile i may take given the resource pending
// on the tile's form. A Desert takes no number, so the list is empty.
func AvailableNumbers(b Board, i int, pending Resource) []DiceNumber {
	out := make([]DiceNumber, 0, len(numberOrder))
	if pending == Desert {
		return out
	}
	for _, n := range numberOrder {
		if CanAssignNumber(b, n, i) {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks a proposed assignment of r and n to tile i. Input errors wrap
// ErrInvalidIndex, ErrUnknownResource or ErrInvalidNumber; supply errors are
// *ConstraintViolation. n is ignored for a Desert.
func Validate(b Board, i int, r Resource, n DiceNumber) error {
	if !ValidIndex(i) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownResource, string(r))
	}
	if r != Desert && !n.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}

	if !CanAssignResource(b, r, i) {
		return &ConstraintViolation{Kind: ResourceLimit, Resource: r, Limit: r.Limit()}
	}
	if r != Desert && !CanAssignNumber(b, n, i) {
		return &ConstraintViolation{Kind: NumberLimit, Resource: r, Number: n, Limit: n.Limit()}
	}
	return nil
}
