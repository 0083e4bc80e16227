// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report delivers action outcomes to wherever they are shown.

A Reporter takes an output id (the name of the element a result belongs
to, e.g. "qrOut") and a JSON-encodable value:

	out.Report("teamOut", res.Payload)
	out.Report("teamOut", report.Failure{Value: res.Payload})

Failure encodes exactly like the value it wraps; it only tells reporters
that the value is an error so they can present it differently.

Implementations:

  - Terminal: prints "== id" then pretty JSON, red or green headers on a TTY
  - Board: keeps the latest value per id in memory, used by the console server

Both also implement panel.Display.
*/
package report
