// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /board", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). A client-supplied X-Request-ID is reused; otherwise
a UUID is generated. The ID is echoed in the response header.

# CORS Middleware

Enable cross-origin requests from the board frontend:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.FrontendOrigin),
	}

Only the configured origin (or any origin for "*") receives CORS headers.
Content-Disposition is exposed so browsers can read export file names.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.AssignTileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the client IP behind a proxy (X-Forwarded-For, then X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
