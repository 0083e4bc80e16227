// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/hackconsole/client"
	"github.com/danielhkuo/hackconsole/handlers"
	"github.com/danielhkuo/hackconsole/panel"
	"github.com/danielhkuo/hackconsole/report"
	"github.com/danielhkuo/hackconsole/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *testutil.Backend) {
	t.Helper()

	backend := testutil.NewBackend(t)
	store, _ := testutil.NewStore(t)
	board := report.NewBoard()
	h := handlers.NewHandler(client.New(backend.URL, store), store, board, board)

	return NewRouter(h, board, testutil.GetTestConfig(backend.URL)), backend
}

func serve(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	w := serve(mux, "GET", "/health", "")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestListActions(t *testing.T) {
	mux, _ := newTestRouter(t)

	w := serve(mux, "GET", "/actions", "")

	var names []string
	if err := json.NewDecoder(w.Body).Decode(&names); err != nil {
		t.Fatalf("Failed to decode actions: %v", err)
	}
	if len(names) == 0 || names[0] != "add-criterion" {
		t.Errorf("Expected sorted action names, got %v", names)
	}
}

func TestRunAction_Login(t *testing.T) {
	mux, backend := newTestRouter(t)
	backend.Handle("POST /auth/login", http.StatusOK,
		`{"access_token":"t1","token_type":"bearer","user":{"id":1,"name":"A","role":"ADMIN"}}`)

	w := serve(mux, "POST", "/actions/login", `{"loginEmail":"a@b.com","loginPassword":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Action  string                     `json:"action"`
		Outputs map[string]json.RawMessage `json:"outputs"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Action != "login" {
		t.Errorf("Expected action 'login', got '%s'", resp.Action)
	}
	if _, ok := resp.Outputs[handlers.OutLogin]; !ok {
		t.Errorf("Expected loginOut in outputs, got %v", resp.Outputs)
	}

	// The panel reflects the new session
	w = serve(mux, "GET", "/panels", "")
	var view panel.View
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode panels: %v", err)
	}
	if !view.Visible[panel.RegionAdmin] || view.Visible[panel.RegionGeneral] {
		t.Errorf("Expected admin view, got %+v", view.Visible)
	}
	if view.Status != "Logged in as A (ADMIN)" {
		t.Errorf("Unexpected status '%s'", view.Status)
	}

	// The next backend call carries the token
	serve(mux, "POST", "/actions/me", "")
	if got := backend.Last(t).Authorization; got != "Bearer t1" {
		t.Errorf("Expected bearer token, got '%s'", got)
	}
}

func TestRunAction_OutputsAccumulate(t *testing.T) {
	mux, backend := newTestRouter(t)
	backend.Handle("GET /health", http.StatusOK, `{"status":"ok"}`)

	serve(mux, "POST", "/actions/health", "")
	serve(mux, "POST", "/actions/leaderboard", `{"lHack":"1"}`)

	w := serve(mux, "GET", "/outputs", "")
	var outputs map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&outputs); err != nil {
		t.Fatalf("Failed to decode outputs: %v", err)
	}
	if string(outputs[handlers.OutHealth]) != `{"status":"ok"}` {
		t.Errorf("Unexpected healthOut %s", outputs[handlers.OutHealth])
	}
	if string(outputs[handlers.OutLeader]) != `{"detail":"Not Found"}` {
		t.Errorf("Unexpected leaderOut %s", outputs[handlers.OutLeader])
	}
}

func TestRunAction_Errors(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
	}{
		{"unknown action", "/actions/drop-tables", "", http.StatusNotFound},
		{"malformed JSON", "/actions/login", "{not json", http.StatusBadRequest},
		{"non-string field", "/actions/generate-qr", `{"qHack":1}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(mux, "POST", tc.path, tc.body)
			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d, got %d. Body: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, backend := newTestRouter(t)

	w := serve(mux, "GET", "/", "")

	expected := "hackconsole -> " + backend.URL
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/actions/login"},
		{"POST", "/outputs"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(mux, tc.method, tc.path, "")
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestNewServer_RefusesForeignOrigin(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle("POST /auth/login", http.StatusOK,
		`{"access_token":"secret-admin-token","token_type":"bearer","user":{"id":1,"name":"A","role":"ADMIN"}}`)
	store, _ := testutil.NewStore(t)
	board := report.NewBoard()
	h := handlers.NewHandler(client.New(backend.URL, store), store, board, board)

	cfg := testutil.GetTestConfig(backend.URL)
	cfg.AllowedOrigin = "http://localhost:5500"
	server := NewServer(h, board, cfg)

	send := func(method, path, origin, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	if w := send("POST", "/actions/login", "", `{"loginEmail":"a@b.com","loginPassword":"x"}`); w.Code != http.StatusOK {
		t.Fatalf("Expected login to succeed, got %d", w.Code)
	}

	t.Run("outputs", func(t *testing.T) {
		w := send("GET", "/outputs", "https://evil.example", "")
		if w.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "secret-admin-token") {
			t.Error("Token leaked to a foreign origin")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("Expected no CORS headers for a foreign origin")
		}
	})

	t.Run("actions", func(t *testing.T) {
		before := len(backend.Requests())
		w := send("POST", "/actions/me", "https://evil.example", "")
		if w.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", w.Code)
		}
		if len(backend.Requests()) != before {
			t.Error("Foreign origin should not reach the backend")
		}
	})

	t.Run("configured origin", func(t *testing.T) {
		w := send("GET", "/outputs", "http://localhost:5500", "")
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5500" {
			t.Error("Expected the configured origin to be allowed")
		}
	})
}
