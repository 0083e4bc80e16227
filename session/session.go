// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/hackconsole/db"
	"github.com/danielhkuo/hackconsole/models"
)

// Storage keys
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store mirrors the logged-in session to a durable backend.
type Store struct {
	kv db.KV

	mu      sync.RWMutex
	session models.Session
}

func NewStore(kv db.KV) *Store {
	return &Store{kv: kv}
}

// Load replaces the in-memory session with what the backend holds.
// Missing keys leave the field empty; a user entry that is not valid JSON
// is treated as absent.
func (s *Store) Load(ctx context.Context) error {
	var sess models.Session

	token, err := s.kv.Get(ctx, KeyToken)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to load token: %w", err)
	}
	sess.Token = token

	raw, err := s.kv.Get(ctx, KeyUser)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to load user: %w", err)
	}
	sess.User = decodeUser([]byte(raw))

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	return nil
}

// SetSession persists token and the user JSON exactly as given, then
// updates memory. On a write error the in-memory session is unchanged.
func (s *Store) SetSession(ctx context.Context, token string, user json.RawMessage) error {
	if len(bytes.TrimSpace(user)) == 0 {
		user = json.RawMessage("null")
	}

	if err := s.kv.Set(ctx, KeyUser, string(user)); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyToken, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = models.Session{Token: token, User: decodeUser(user)}
	s.mu.Unlock()
	return nil
}

// decodeUser reads the fields the panel needs. Empty, null or malformed
// JSON is an absent user.
func decodeUser(raw []byte) *models.User {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		slog.Warn("ignoring malformed stored user", "error", err)
		return nil
	}
	return &user
}

// Clear empties the session in memory and removes both keys.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, KeyToken); err != nil {
		return err
	}
	return s.kv.Delete(ctx, KeyUser)
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{Token: s.session.Token, User: cloneUser(s.session.User)}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
