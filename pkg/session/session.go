// Package session provides HTTP session management backed by Redis.
//
// Usage (middleware):
//
//	r.Use(session.Middleware(session.DefaultOptions()))
//
// Usage (handler):
//
//	sess := session.FromCtx(r)
//	sess.SetUser(user.ID, string(user.Role))
//	sess.Flash(session.FlashSuccess, "Successfully created an order!")
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/orderdesk/pkg/cache"
)

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "orderdesk_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

// Flash message levels, mirrored in the JSON payload handed to the UI.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashError   = "error"
)

// Message is one user-visible notification queued for the next response.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

const (
	keyUserID  = "user_id"
	keyRole    = "role"
	keyFlashes = "_flashes"
)

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func redisKey(id string) string { return "orderdesk:session:" + id }

func load(id string) map[string]interface{} {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data
	}
	return map[string]interface{}{}
}

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetString is a typed convenience getter.
func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.data[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetUint is a typed convenience getter.
// JSON round-trips numbers as float64, so both shapes are accepted.
func (s *Session) GetUint(key string) (uint, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return uint(n), true
	case uint:
		return n, true
	case int:
		return uint(n), true
	}
	return 0, false
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// ── Identity helpers ─────────────────────────────────────────────────────────

// SetUser records the authenticated account in the session (login).
func (s *Session) SetUser(userID uint, role string) {
	s.Set(keyUserID, userID)
	s.Set(keyRole, role)
}

// User returns the authenticated account, if any.
func (s *Session) User() (userID uint, role string, ok bool) {
	userID, ok = s.GetUint(keyUserID)
	if !ok {
		return 0, "", false
	}
	role, _ = s.GetString(keyRole)
	return userID, role, true
}

// ── Flash messages ───────────────────────────────────────────────────────────

// Flash queues a user-visible notification for the next rendered response.
func (s *Session) Flash(level, text string) {
	raw, _ := s.data[keyFlashes].([]interface{})
	raw = append(raw, map[string]interface{}{"level": level, "text": text})
	s.Set(keyFlashes, raw)
}

// PullFlashes returns all queued notifications and clears them.
func (s *Session) PullFlashes() []Message {
	raw, ok := s.data[keyFlashes].([]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}
	s.Delete(keyFlashes)

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		level, _ := m["level"].(string)
		text, _ := m["text"].(string)
		msgs = append(msgs, Message{Level: level, Text: text})
	}
	return msgs
}

// Invalidate destroys the session (logout).
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Save persists the session to Redis and writes the cookie to the response.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	if err := cache.Set(redisKey(s.id), json.RawMessage(raw), s.opts.TTL); err != nil {
		return fmt.Errorf("session: redis save: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				sess.id = cookie.Value
				sess.data = load(sess.id)
			} else {
				id, _ := newID()
				sess.id = id
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context.
// Returns an empty (unsaved) session if none is present.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	id, _ := newID()
	return &Session{id: id, data: map[string]interface{}{}, opts: DefaultOptions()}
}
