// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session holds the console's bearer token and current user and
// mirrors them to a db.KV under the keys "token" and "user" so a later
// run picks up where the last login left off. The token is opaque: it is
// never parsed, refreshed, or expired here.
package session
