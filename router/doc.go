// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the console server routes using Go 1.22+ routing
patterns.

# Routes

	GET  /health          plain "OK"
	GET  /actions         sorted action names
	POST /actions/{name}  run an action with a JSON object of field values
	GET  /outputs         latest value reported to each output id
	GET  /panels          panel visibility and status line

POST /actions/{name} answers with every output the action reported:

	{"action": "login", "outputs": {"loginOut": {...}}}

Unknown actions return 404 and malformed field objects return 400. A
backend failure is still a 200 here; the failure body is in outputs.

# Usage

	board := report.NewBoard()
	h := handlers.NewHandler(api, store, board, board)
	http.ListenAndServe("127.0.0.1:3319", router.NewServer(h, board, cfg))

NewServer applies the CORS policy: only the server's own origin and
cfg.AllowedOrigin may call it from a browser.
*/
package router
