// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/catan-builder/handlers"
	"github.com/danielhkuo/catan-builder/middleware"
	"github.com/danielhkuo/catan-builder/models"
	"github.com/danielhkuo/catan-builder/store"
)

func NewRouter(boardStore *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	boardHandler := handlers.NewBoardHandler(boardStore)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	})

	// Board state
	mux.HandleFunc("GET /board", middleware.WithLogging(boardHandler.GetBoard))
	mux.HandleFunc("PUT /board/tiles/{index}", middleware.WithLogging(boardHandler.AssignTile))
	mux.HandleFunc("POST /board/clear", middleware.WithLogging(boardHandler.ClearBoard))

	// Form support (read-only)
	mux.HandleFunc("GET /board/tiles/{index}/options", middleware.WithLogging(boardHandler.GetTileOptions))
	mux.HandleFunc("GET /board/counts", middleware.WithLogging(boardHandler.GetCounts))

	// Download
	mux.HandleFunc("GET /board/export", middleware.WithLogging(boardHandler.ExportBoard))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("catan-builder API v1"))
	})

	return mux
}
