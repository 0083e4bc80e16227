// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/hackconsole/models"
)

// QR validity window relative to generation time
const (
	qrValidBefore = time.Minute
	qrValidAfter  = time.Hour
)

func (h *Handler) qrRequest(f Form) models.QRGenerateRequest {
	now := h.now()
	return models.QRGenerateRequest{
		UserID:      models.Coerce(f.Value("qUser")),
		HackathonID: models.Coerce(f.Value("qHack")),
		Purpose:     valueOr(f, "qPurpose", models.PurposeLunch),
		ValidFrom:   models.ISOTime(now.Add(-qrValidBefore)),
		ValidTo:     models.ISOTime(now.Add(qrValidAfter)),
	}
}

// GenerateQR handles POST /qr/generate
func (h *Handler) GenerateQR(ctx context.Context, f Form) {
	req := h.qrRequest(f)
	slog.Debug("generating qr",
		"purpose", req.Purpose,
		"expires", humanize.RelTime(h.now(), h.now().Add(qrValidAfter), "ago", "from now"),
	)
	h.send(ctx, OutQR, http.MethodPost, "/qr/generate", req)
}

// Scan handles POST /scan
func (h *Handler) Scan(ctx context.Context, f Form) {
	req := models.ScanRequest{
		Token:     f.Value("scanToken"),
		ScannerID: models.Coerce(f.Value("qScanner")),
	}
	h.send(ctx, OutScan, http.MethodPost, "/scan", req)
}

// GenerateAndScan issues a QR token and immediately scans it.
// The scan only starts once generation succeeded.
func (h *Handler) GenerateAndScan(ctx context.Context, f Form) {
	q, ok := h.call(ctx, OutQR, http.MethodPost, "/qr/generate", h.qrRequest(f))
	if !ok {
		return
	}

	var qr models.QRGenerateResponse
	if err := q.Decode(&qr); err != nil {
		slog.Debug("qr response has no usable token", "error", err)
		qr.Token = ""
	}

	req := models.ScanRequest{
		Token:     qr.Token,
		ScannerID: models.Coerce(f.Value("qScanner")),
	}
	s, ok := h.call(ctx, OutQR, http.MethodPost, "/scan", req)
	if !ok {
		return
	}

	h.out.Report(OutQR, map[string]json.RawMessage{
		"qr":   q.Payload,
		"scan": s.Payload,
	})
}

// LoadScanAnalytics handles GET /admin/scan-analytics?hackathon_id=
func (h *Handler) LoadScanAnalytics(ctx context.Context, f Form) {
	q := url.Values{}
	q.Set("hackathon_id", models.Coerce(f.Value("aHack")).String())
	h.send(ctx, OutAnalytics, http.MethodGet, "/admin/scan-analytics?"+q.Encode(), nil)
}
