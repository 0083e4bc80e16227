// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions for the
console server.

# Request Logging

	mux.HandleFunc("GET /outputs", middleware.WithLogging(handler))

Logs method, path, status, remote address and duration_ms once the
handler returns. The X-Request-ID header is echoed, or generated when the
caller did not send one.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(mux),
	}

Browser requests are admitted from the server's own origin and from the
one configured origin. Any other Origin is refused with 403, so a page on
another site cannot read outputs (which include the access token) or run
actions with the stored session.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var fields map[string]string
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
