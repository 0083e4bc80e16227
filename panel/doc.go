// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package panel decides which console regions are visible for the current
// session. Render is a pure function of the session; Apply hands the
// result to a Display.
package panel
