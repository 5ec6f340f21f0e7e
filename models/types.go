// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/catan-builder/persist"

// Request types

// diceNumber accepts 6, "6", "" or null, matching what HTML selects submit
type AssignTileRequest struct {
	Type       string            `json:"type"`
	DiceNumber persist.DiceValue `json:"diceNumber"`
}

// Response types

type Tile struct {
	Index      int    `json:"index"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Type       string `json:"type"`
	DiceNumber int    `json:"diceNumber"` // 0 when empty or Desert
}

type BoardResponse struct {
	Tiles    []Tile `json:"tiles"`
	Assigned int    `json:"assigned"`
}

// TileOptionsResponse lists the choices a tile form should enable.
// DefaultType and DefaultDiceNumber preselect the form fields.
type TileOptionsResponse struct {
	Tile              Tile     `json:"tile"`
	PendingType       string   `json:"pending_type"`
	Resources         []string `json:"resources"`
	Numbers           []int    `json:"numbers"`
	DefaultType       string   `json:"default_type"`
	DefaultDiceNumber int      `json:"default_dice_number"`
}

type ResourceUsage struct {
	Type  string `json:"type"`
	Used  int    `json:"used"`
	Limit int    `json:"limit"`
}

type NumberUsage struct {
	DiceNumber int `json:"diceNumber"`
	Used       int `json:"used"`
	Limit      int `json:"limit"`
}

type CountsResponse struct {
	Resources []ResourceUsage `json:"resources"`
	Numbers   []NumberUsage   `json:"numbers"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Error response

type Violation struct {
	Kind       string `json:"kind"` // "resource" or "number"
	Type       string `json:"type"`
	DiceNumber int    `json:"diceNumber,omitempty"`
	Limit      int    `json:"limit"`
}

type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message,omitempty"`
	Violation *Violation `json:"violation,omitempty"`
}
