// Package session provides cookie-keyed HTTP sessions with a pluggable
// backing store (in-process memory by default, Redis optionally).
//
// The shop uses flash values as its cross-page handoff channel: a search
// query or category filter set on one page is consumed by the next page and
// then gone. With the memory store the channel also dies with the process,
// which is exactly the lifetime it is supposed to have.
//
// Usage (middleware):
//
//	r.Use(session.Middleware(session.DefaultOptions(), session.NewMemoryStore()))
//
// Usage (handler):
//
//	sess := session.FromCtx(r)
//	sess.Flash("search_query", q)
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

// ------------------- Options -------------------

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults for a localhost shop.
func DefaultOptions() Options {
	return Options{
		CookieName: "qs_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // plain http on localhost
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

// ------------------- Store -------------------

// Store persists session data between requests.
type Store interface {
	Load(id string) (map[string]interface{}, error)
	Save(id string, data map[string]interface{}, ttl time.Duration) error
	Delete(id string) error
}

// ------------------- Session -------------------

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	store   Store
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
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

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// Flash stores a value that is auto-deleted after the next Get.
func (s *Session) Flash(key string, value interface{}) {
	s.Set("_flash_"+key, value)
}

// GetFlash retrieves and removes a flash value.
func (s *Session) GetFlash(key string) (interface{}, bool) {
	v, ok := s.Get("_flash_" + key)
	if ok {
		s.Delete("_flash_" + key)
	}
	return v, ok
}

// GetFlashString retrieves and removes a flash value as a string.
func (s *Session) GetFlashString(key string) (string, bool) {
	v, ok := s.GetFlash(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Invalidate destroys the session contents.
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Save persists the session to its store and writes the cookie to the
// response. A session that was never changed is not written.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	if err := s.store.Save(s.id, s.data, s.opts.TTL); err != nil {
		return err
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

// ------------------- Middleware -------------------

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(opts Options, store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts, store: store}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				sess.id = cookie.Value
				if data, err := store.Load(sess.id); err == nil && data != nil {
					sess.data = data
				}
			}
			if sess.id == "" {
				sess.id = newID()
			}
			if sess.data == nil {
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
	return &Session{
		id:    newID(),
		data:  map[string]interface{}{},
		opts:  DefaultOptions(),
		store: NewMemoryStore(),
	}
}
