// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/catan-builder/board"
	"github.com/danielhkuo/catan-builder/middleware"
	"github.com/danielhkuo/catan-builder/models"
	"github.com/danielhkuo/catan-builder/persist"
	"github.com/danielhkuo/catan-builder/store"
)

// Preselected form values for an empty tile
const (
	defaultFormType       = board.Wool
	defaultFormDiceNumber = board.DiceNumber(6)
)

type BoardHandler struct {
	store *store.Store
}

func NewBoardHandler(s *store.Store) *BoardHandler {
	return &BoardHandler{store: s}
}

// GetBoard handles GET /board
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, toBoardResponse(h.store.CurrentState()))
}

// AssignTile handles PUT /board/tiles/{index}
func (h *BoardHandler) AssignTile(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var req models.AssignTileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resource := board.Resource(strings.TrimSpace(req.Type))
	updated, err := h.store.AssignTile(r.Context(), index, resource, board.DiceNumber(req.DiceNumber))
	if err != nil {
		writeAssignError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toBoardResponse(updated))
}

// ClearBoard handles POST /board/clear
func (h *BoardHandler) ClearBoard(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, toBoardResponse(h.store.ClearBoard(r.Context())))
}

// GetTileOptions handles GET /board/tiles/{index}/options?type=<pending>
// Without a type, the pending resource is the tile's own (or the form default).
func (h *BoardHandler) GetTileOptions(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	b := h.store.CurrentState()
	tile := b[index]

	defaultType := tile.Resource
	defaultNumber := tile.Number
	if tile.Empty() {
		defaultType = defaultFormType
		defaultNumber = defaultFormDiceNumber
	}

	pending := defaultType
	if q := strings.TrimSpace(r.URL.Query().Get("type")); q != "" {
		pending = board.Resource(q)
		if !pending.Valid() {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown resource type %q", q))
			return
		}
	}

	resources := board.AvailableResources(b, index)
	numbers := board.AvailableNumbers(b, index, pending)

	resp := models.TileOptionsResponse{
		Tile:              toTile(index, tile),
		PendingType:       string(pending),
		Resources:         make([]string, len(resources)),
		Numbers:           make([]int, len(numbers)),
		DefaultType:       string(defaultType),
		DefaultDiceNumber: int(defaultNumber),
	}
	for i, res := range resources {
		resp.Resources[i] = string(res)
	}
	for i, n := range numbers {
		resp.Numbers[i] = int(n)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetCounts handles GET /board/counts
func (h *BoardHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	b := h.store.CurrentState()
	byResource := board.CountsByResource(b)
	byNumber := board.CountsByNumber(b)

	resp := models.CountsResponse{
		Resources: make([]models.ResourceUsage, 0, len(board.Resources())),
		Numbers:   make([]models.NumberUsage, 0, len(board.Numbers())),
	}
	for _, res := range board.Resources() {
		resp.Resources = append(resp.Resources, models.ResourceUsage{
			Type:  string(res),
			Used:  byResource[res],
			Limit: res.Limit(),
		})
	}
	for _, n := range board.Numbers() {
		resp.Numbers = append(resp.Numbers, models.NumberUsage{
			DiceNumber: int(n),
			Used:       byNumber[n],
			Limit:      n.Limit(),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ExportBoard handles GET /board/export?format=json|yaml
func (h *BoardHandler) ExportBoard(w http.ResponseWriter, r *http.Request) {
	format, err := persist.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := persist.Export(h.store.CurrentState(), format)
	if err != nil {
		slog.Error("failed to export board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export board")
		return
	}

	slog.Info("board exported", "format", format, "size", humanize.Bytes(uint64(len(data))))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || !board.ValidIndex(index) {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("tile index must be between 0 and %d", board.TileCount-1))
		return 0, false
	}
	return index, true
}

// writeAssignError maps store errors: supply limits are 409, bad input is 400
func writeAssignError(w http.ResponseWriter, err error) {
	var cv *board.ConstraintViolation
	if errors.As(err, &cv) {
		violation := &models.Violation{
			Kind:  string(cv.Kind),
			Type:  string(cv.Resource),
			Limit: cv.Limit,
		}
		if cv.Kind == board.NumberLimit {
			violation.DiceNumber = int(cv.Number)
		}
		middleware.JSONResponse(w, http.StatusConflict, models.ErrorResponse{
			Error:     http.StatusText(http.StatusConflict),
			Message:   cv.Error(),
			Violation: violation,
		})
		return
	}

	if errors.Is(err, board.ErrInvalidIndex) ||
		errors.Is(err, board.ErrUnknownResource) ||
		errors.Is(err, board.ErrInvalidNumber) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Error("failed to assign tile", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to assign tile")
}

func toTile(index int, t board.Tile) models.Tile {
	return models.Tile{
		Index:      index,
		X:          t.Position.X,
		Y:          t.Position.Y,
		Type:       string(t.Resource),
		DiceNumber: int(t.Number),
	}
}

func toBoardResponse(b board.Board) models.BoardResponse {
	tiles := make([]models.Tile, len(b))
	for i, t := range b {
		tiles[i] = toTile(i, t)
	}
	return models.BoardResponse{Tiles: tiles, Assigned: b.Assigned()}
}
