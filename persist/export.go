// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/catan-builder/board"
)

// Format is an export document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml", "yml" or "" (json).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// FileName is the suggested download name.
func (f Format) FileName() string {
	if f == FormatYAML {
		return "board_config.yaml"
	}
	return "board_config.json"
}

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// ExportRecord is one tile in an export document. Unset type and diceNumber
// are always the empty string, never 0.
type ExportRecord struct {
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Type       string `json:"type" yaml:"type"`
	DiceNumber any    `json:"diceNumber" yaml:"diceNumber"`
}

// ExportRecords lists every tile in layout order.
func ExportRecords(b board.Board) []ExportRecord {
	out := make([]ExportRecord, len(b))
	for i, t := range b {
		var dice any = ""
		if t.Number != board.NoNumber {
			dice = int(t.Number)
		}
		out[i] = ExportRecord{
			X:          t.Position.X,
			Y:          t.Position.Y,
			Type:       string(t.Resource),
			DiceNumber: dice,
		}
	}
	return out
}

// Export renders the board as a human-readable document in the given format.
func Export(b board.Board, f Format) ([]byte, error) {
	records := ExportRecords(b)
	switch f {
	case FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to export board as yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to export board as json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", string(f))
	}
}
