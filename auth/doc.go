// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the bearer token on outgoing requests.

The console never inspects the token it receives from POST /auth/login;
it only forwards it:

	auth.Authorize(req, store.Token())

Authorize is a no-op for an empty token, so logged-out calls carry no
Authorization header at all.

BearerToken reads the header back, which the test backend uses to check
what the client sent. Mask shortens a token for log lines:

	slog.Debug("calling backend", "token", auth.Mask(token))
*/
package auth
