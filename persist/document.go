// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/catan-builder/board"
)

// Record is one tile in the persisted document.
type Record struct {
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Type       string    `json:"type"`
	DiceNumber DiceValue `json:"diceNumber"`
}

// DiceValue is a dice number that decodes from a JSON number, a numeric string,
// "" or null. Empty forms, fractions and non-numeric strings decode to 0.
type DiceValue int

func (d *DiceValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*d = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*d = wholeNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("diceNumber must be a number or string, got %s", raw)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		// "" or not a number: no token
		*d = 0
		return nil
	}
	*d = wholeNumber(f)
	return nil
}

func wholeNumber(f float64) DiceValue {
	if f != math.Trunc(f) || math.Abs(f) > 1e6 {
		return 0
	}
	return DiceValue(f)
}

// Encode serializes all tiles in layout order.
func Encode(b board.Board) ([]byte, error) {
	records := make([]Record, len(b))
	for i, t := range b {
		records[i] = Record{
			X:          t.Position.X,
			Y:          t.Position.Y,
			Type:       string(t.Resource),
			DiceNumber: DiceValue(t.Number),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses a persisted document and reconciles it with the layout.
// Only a document that is not a JSON array is an error; a record or field of
// the wrong shape leaves its own tile empty.
func Decode(data []byte) (board.Board, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return board.New(), fmt.Errorf("failed to decode board: %w", err)
	}

	records := make([]Record, len(raw))
	for i, msg := range raw {
		records[i] = decodeRecord(msg)
	}
	return Reconcile(records), nil
}

// decodeRecord reads type and diceNumber independently; a field that does
// not decode is left at its zero value.
func decodeRecord(msg json.RawMessage) Record {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return Record{}
	}

	var rec Record
	if v, ok := fields["type"]; ok {
		if err := json.Unmarshal(v, &rec.Type); err != nil {
			rec.Type = ""
		}
	}
	if v, ok := fields["diceNumber"]; ok {
		if err := rec.DiceNumber.UnmarshalJSON(v); err != nil {
			rec.DiceNumber = 0
		}
	}
	return rec
}

// Reconcile overlays records onto the canonical layout by index. Positions always
// come from board.Layout(); only type and diceNumber are taken from the records.
// Missing records leave their tile empty, extra records are ignored, and values
// that are not a valid resource or token are dropped. A record that would push
// a resource or number past its supply limit is left empty, so the result
// always satisfies the limits.
func Reconcile(records []Record) board.Board {
	b := board.New()
	for i := range b {
		if i >= len(records) {
			break
		}
		rec := records[i]

		r, ok := board.ParseResource(strings.TrimSpace(rec.Type))
		if !ok {
			continue
		}
		n := board.DiceNumber(rec.DiceNumber)
		if r == board.Desert || !n.Valid() {
			n = board.NoNumber
		}

		if err := withinSupply(b, i, r, n); err != nil {
			slog.Warn("stored tile exceeds supply, leaving it empty", "index", i, "type", r, "dice_number", n, "error", err)
			continue
		}
		b = b.With(i, r, n)
	}
	return b
}

// withinSupply checks r and n against the limits. A non-Desert record without
// a token is still kept, so only the resource limit applies to it.
func withinSupply(b board.Board, i int, r board.Resource, n board.DiceNumber) error {
	if n == board.NoNumber && r != board.Desert {
		if !board.CanAssignResource(b, r, i) {
			return &board.ConstraintViolation{Kind: board.ResourceLimit, Resource: r, Limit: r.Limit()}
		}
		return nil
	}
	return board.Validate(b, i, r, n)
}
