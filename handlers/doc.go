// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the console actions.

Each action reads named fields from a Form, calls the hackathon API and
reports exactly one value to a named output id. Nothing is returned to
the caller; success payloads, failure payloads and local errors all go to
the Reporter.

# Setup

	board := report.NewBoard()
	h := handlers.NewHandler(client.New(baseURL, store), store, board, board)
	h.Run(ctx, "login", handlers.Fields{"loginEmail": "a@b.com", "loginPassword": "x"})

# Actions

Auth (auth.go):

  - health, register, verify-otp, signup, login, logout, me, panels

Verification (verification.go):

  - approve-student, upload-documents, face-match

Hackathons (hackathons.go):

  - create-hackathon, create-ps, create-team, submit-round, lock-submissions

Scoring (scoring.go):

  - add-criterion, score, add-criterion-and-score, leaderboard

QR (qr.go):

  - generate-qr, scan, gen-and-scan, scan-analytics

# Numbers

Numeric fields go through models.Coerce. Text that is not a number is
sent as JSON null and appears as NaN in URLs; the backend decides what to
do with it.

# Chained Actions

add-criterion-and-score and gen-and-scan make two calls in order. The
second call uses the id or token from the first. The first failure is
reported and ends the action; on success both payloads are reported
together.

# Session

login stores the token and user and refreshes the panel display; logout
clears them locally without calling the backend.
*/
package handlers
