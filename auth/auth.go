// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Authorize sets the bearer header when token is non-empty and leaves the
// request untouched otherwise.
func Authorize(req *http.Request, token string) {
	if token == "" {
		return
	}
	req.Header.Set(HeaderAuthorization, BearerPrefix+token)
}

// BearerToken extracts the token from a bearer Authorization header.
// It returns "" when the header is missing or uses another scheme.
func BearerToken(r *http.Request) string {
	h := r.Header.Get(HeaderAuthorization)
	if !strings.HasPrefix(h, BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(h, BearerPrefix)
}

// Mask keeps the first and last four characters of a token for logs.
// Short tokens are fully masked.
func Mask(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + "..." + token[len(token)-4:]
}
