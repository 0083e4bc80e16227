// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/danielhkuo/hackconsole/client"
	"github.com/danielhkuo/hackconsole/models"
	"github.com/danielhkuo/hackconsole/panel"
	"github.com/danielhkuo/hackconsole/report"
)

var ErrUnknownAction = errors.New("unknown action")

// Form supplies the text of named input fields. Missing fields read as "".
type Form interface {
	Value(field string) string
}

// Fields is a Form backed by a map.
type Fields map[string]string

func (f Fields) Value(field string) string {
	return f[field]
}

type caller interface {
	Call(ctx context.Context, method, path string, body interface{}) (client.Result, error)
}

type sessionStore interface {
	Session() models.Session
	SetSession(ctx context.Context, token string, user json.RawMessage) error
	Clear(ctx context.Context) error
}

// Action runs one console operation against the fields in f.
type Action func(ctx context.Context, f Form)

type Handler struct {
	api     caller
	store   sessionStore
	out     report.Reporter
	display panel.Display
	now     func() time.Time
}

func NewHandler(api caller, store sessionStore, out report.Reporter, display panel.Display) *Handler {
	return &Handler{
		api:     api,
		store:   store,
		out:     out,
		display: display,
		now:     time.Now,
	}
}

// WithReporter returns a copy of h that reports to out.
func (h *Handler) WithReporter(out report.Reporter) *Handler {
	c := *h
	c.out = out
	return &c
}

// WithClock returns a copy of h that reads the time from now.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	c := *h
	c.now = now
	return &c
}

// Actions maps each action name to its method.
func (h *Handler) Actions() map[string]Action {
	return map[string]Action{
		"health":                  h.CheckHealth,
		"register":                h.RegisterUser,
		"verify-otp":              h.VerifyOTP,
		"approve-student":         h.ApproveStudent,
		"signup":                  h.Signup,
		"login":                   h.Login,
		"logout":                  h.Logout,
		"me":                      h.LoadMe,
		"panels":                  h.ShowPanels,
		"create-hackathon":        h.CreateHackathon,
		"create-ps":               h.CreateProblemStatement,
		"create-team":             h.CreateTeam,
		"submit-round":            h.SubmitRound,
		"lock-submissions":        h.LockSubmissions,
		"add-criterion":           h.AddCriterion,
		"score":                   h.Score,
		"add-criterion-and-score": h.AddCriterionAndScore,
		"leaderboard":             h.LoadLeaderboard,
		"generate-qr":             h.GenerateQR,
		"scan":                    h.Scan,
		"gen-and-scan":            h.GenerateAndScan,
		"scan-analytics":          h.LoadScanAnalytics,
		"upload-documents":        h.UploadDocuments,
		"face-match":              h.FaceMatch,
	}
}

// ActionNames returns every action name in sorted order.
func (h *Handler) ActionNames() []string {
	actions := h.Actions()
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up an action by name and runs it.
func (h *Handler) Run(ctx context.Context, name string, f Form) error {
	action, ok := h.Actions()[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	start := time.Now()
	action(ctx, f)
	slog.Info("action completed",
		"action", name,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// RefreshPanel applies the panel view for the current session.
func (h *Handler) RefreshPanel() panel.View {
	return panel.Refresh(h.store.Session(), h.display)
}

// View renders the panel state for the current session without applying it.
func (h *Handler) View() panel.View {
	return panel.Render(h.store.Session())
}

// call sends one request. On a network error or a non-2xx answer it
// reports the failure to outID and returns false; on success it returns
// the result without reporting, so chained actions can combine payloads.
func (h *Handler) call(ctx context.Context, outID, method, path string, body interface{}) (client.Result, bool) {
	res, err := h.api.Call(ctx, method, path, body)
	if err != nil {
		h.fail(outID, err)
		return client.Result{}, false
	}
	if !res.OK() {
		h.out.Report(outID, report.Failure{Value: res.Payload})
		return res, false
	}
	return res, true
}

// send is call plus reporting the success payload.
func (h *Handler) send(ctx context.Context, outID, method, path string, body interface{}) {
	res, ok := h.call(ctx, outID, method, path, body)
	if ok {
		h.out.Report(outID, res.Payload)
	}
}

// fail reports an error that did not come from the backend.
func (h *Handler) fail(outID string, err error) {
	h.out.Report(outID, report.Failure{Value: models.ErrorResponse{Error: err.Error()}})
}

// valueOr returns the field text, or def when the field is empty.
func valueOr(f Form, field, def string) string {
	if v := f.Value(field); v != "" {
		return v
	}
	return def
}

// deadline is now plus the given number of days, as an ISO timestamp.
func (h *Handler) deadline(days int) string {
	return models.ISOTime(h.now().Add(time.Duration(days) * 24 * time.Hour))
}
