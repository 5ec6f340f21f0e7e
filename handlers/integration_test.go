// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/catan-builder/board"
	"github.com/danielhkuo/catan-builder/db"
	"github.com/danielhkuo/catan-builder/models"
	"github.com/danielhkuo/catan-builder/persist"
	"github.com/danielhkuo/catan-builder/store"
	"github.com/danielhkuo/catan-builder/testutil"
)

// TestFullBoardWorkflow tests the complete end-to-end workflow:
// 1. Fill all 19 tiles with a legal base-game layout
// 2. Confirm every supply is exhausted
// 3. Restart and confirm the board was restored
// 4. Export the board
// 5. Clear the board
// 6. Restart and confirm the cleared board was restored
func TestFullBoardWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	newHandler := func() *BoardHandler {
		repo := persist.NewRepository(db.NewKV(conn), persist.DefaultKey)
		return NewBoardHandler(store.New(context.Background(), repo))
	}

	layout := []struct {
		resource string
		number   int
	}{
		{"Ore", 10}, {"Wool", 2}, {"Forest", 9},
		{"Grain", 12}, {"Brick", 6}, {"Wool", 4}, {"Brick", 10},
		{"Grain", 9}, {"Forest", 11}, {"Desert", 0}, {"Forest", 3}, {"Ore", 8},
		{"Forest", 8}, {"Ore", 3}, {"Grain", 4}, {"Wool", 5},
		{"Brick", 5}, {"Grain", 6}, {"Wool", 11},
	}

	// Step 1: Fill the board
	handler := newHandler()
	for i, tile := range layout {
		index := strconv.Itoa(i)
		w := httptest.NewRecorder()
		handler.AssignTile(w, assignRequest(index, map[string]interface{}{
			"type":       tile.resource,
			"diceNumber": tile.number,
		}))
		if w.Code != http.StatusOK {
			t.Fatalf("Step 1 - Assign tile %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 1 - Assigned %d tiles", len(layout))

	// Step 2: Nothing left in supply
	w := httptest.NewRecorder()
	handler.GetCounts(w, httptest.NewRequest("GET", "/board/counts", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Get counts failed: %d - %s", w.Code, w.Body.String())
	}
	var counts models.CountsResponse
	json.NewDecoder(w.Body).Decode(&counts)
	for _, u := range counts.Resources {
		if u.Used != u.Limit {
			t.Errorf("Step 2 - %s used %d of %d", u.Type, u.Used, u.Limit)
		}
	}
	for _, u := range counts.Numbers {
		if u.Used != u.Limit {
			t.Errorf("Step 2 - number %d used %d of %d", u.DiceNumber, u.Used, u.Limit)
		}
	}

	// Any further change of type on a full board conflicts
	w = httptest.NewRecorder()
	handler.AssignTile(w, assignRequest("0", map[string]interface{}{"type": "Wool", "diceNumber": 10}))
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 2 - Expected conflict on full board, got %d - %s", w.Code, w.Body.String())
	}

	// Step 3: Restart
	handler = newHandler()
	w = httptest.NewRecorder()
	handler.GetBoard(w, httptest.NewRequest("GET", "/board", nil))
	var restored models.BoardResponse
	json.NewDecoder(w.Body).Decode(&restored)
	if restored.Assigned != board.TileCount {
		t.Fatalf("Step 3 - Expected %d assigned after restart, got %d", board.TileCount, restored.Assigned)
	}
	for i, tile := range layout {
		got := restored.Tiles[i]
		if got.Type != tile.resource || got.DiceNumber != tile.number {
			t.Errorf("Step 3 - Tile %d: expected %s/%d, got %s/%d", i, tile.resource, tile.number, got.Type, got.DiceNumber)
		}
	}
	t.Log("Step 3 - Board restored after restart")

	// Step 4: Export
	w = httptest.NewRecorder()
	handler.ExportBoard(w, httptest.NewRequest("GET", "/board/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Export failed: %d - %s", w.Code, w.Body.String())
	}
	var exported []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &exported); err != nil {
		t.Fatalf("Step 4 - Export is not JSON: %v", err)
	}
	if exported[9]["type"] != "Desert" || exported[9]["diceNumber"] != "" {
		t.Errorf("Step 4 - Unexpected desert record: %v", exported[9])
	}

	// Step 5: Clear
	w = httptest.NewRecorder()
	handler.ClearBoard(w, httptest.NewRequest("POST", "/board/clear", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Clear failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 6: Restart again
	handler = newHandler()
	w = httptest.NewRecorder()
	handler.GetBoard(w, httptest.NewRequest("GET", "/board", nil))
	var cleared models.BoardResponse
	json.NewDecoder(w.Body).Decode(&cleared)
	if cleared.Assigned != 0 {
		t.Errorf("Step 6 - Expected empty board after restart, got %d assigned", cleared.Assigned)
	}
	t.Log("Step 6 - Cleared board restored after restart")
}
