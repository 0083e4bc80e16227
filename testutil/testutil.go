// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/hackconsole/auth"
	"github.com/danielhkuo/hackconsole/cliparse"
	"github.com/danielhkuo/hackconsole/db"
	"github.com/danielhkuo/hackconsole/session"
)

// FixedNow is the clock used by handler tests.
var FixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// Request is one call received by the fake backend.
type Request struct {
	Method        string
	URI           string
	Authorization string
	ContentType   string
	Body          []byte
}

// JSON decodes the request body into a generic map.
func (r Request) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%s)", err, r.Body)
	}
	return m
}

// Backend is a fake hackathon API. Unregistered routes answer 404 with
// {"detail":"Not Found"}.
type Backend struct {
	*httptest.Server

	mux      *http.ServeMux
	mu       sync.Mutex
	requests []Request
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{mux: http.NewServeMux()}
	b.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		Respond(w, http.StatusNotFound, `{"detail":"Not Found"}`)
	})

	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			URI:           r.URL.RequestURI(),
			Authorization: r.Header.Get(auth.HeaderAuthorization),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Close)

	return b
}

// Handle answers pattern (e.g. "POST /teams") with a fixed status and body.
func (b *Backend) Handle(pattern string, status int, body string) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		Respond(w, status, body)
	})
}

func (b *Backend) HandleFunc(pattern string, h http.HandlerFunc) {
	b.mux.HandleFunc(pattern, h)
}

// Requests returns every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Last returns the most recent request and fails the test if there is none.
func (b *Backend) Last(t *testing.T) Request {
	t.Helper()
	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("backend received no requests")
	}
	return reqs[len(reqs)-1]
}

func Respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// NewStore returns a loaded session store over a SQLite file in a temp dir,
// along with the file path so tests can reopen it.
func NewStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	return OpenStore(t, path), path
}

// OpenStore opens and loads a session store over an existing path.
func OpenStore(t *testing.T, path string) *session.Store {
	t.Helper()

	kv, err := db.Open(context.Background(), db.TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open session db: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	store := session.NewStore(kv)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	return store
}

func GetTestConfig(baseURL string) cliparse.Config {
	return cliparse.Config{
		BaseURL:      baseURL,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file::memory:",
		Host:         "127.0.0.1",
		Port:         3319,
		LogLevel:     "error",
	}
}
