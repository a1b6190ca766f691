// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an ID, taken from X-Request-ID when the
caller sends one and generated otherwise. The ID is echoed in the response
header and available to handlers:

	id := middleware.RequestID(r.Context())

# Caching

Dashboard views always reflect the current sheet, so they are wrapped with
NoStore:

	mux.HandleFunc("GET /{$}", middleware.WithLogging(middleware.NoStore(h.Index)))

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadGateway, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in the request log.
*/
package middleware
