// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the single gateway between the console and the
hackathon backend.

# Calls

	c := client.New("http://127.0.0.1:8000", store)
	res, err := c.Call(ctx, http.MethodPost, "/teams", req)

Every call sends:

  - Content-Type: application/json
  - X-Request-ID: a fresh UUID
  - Authorization: Bearer <token>, only when the TokenSource has a token

# Results

Call distinguishes three outcomes:

	err != nil        the request never got a response (connection refused, ctx done)
	res.OK()          2xx, res.Payload is the response JSON unchanged
	!res.OK()         non-2xx, res.Payload is the error JSON

If the body is not valid JSON the payload is {"status": <code>} for both
success and failure statuses.

There is no timeout, retry, or backoff: one attempt per call.
*/
package client
