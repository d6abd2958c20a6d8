// Package sessions hands out one Selector per caller context and forgets
// idle ones. Sessions are anonymous handles: no accounts, nothing outlives
// the process.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"semainier/internal/catalog"
	"semainier/internal/planner"
)

var ErrSessionNotFound = errors.New("session not found")

var nowFn = time.Now

// Session owns one selector. All engine calls go through With so two
// requests against the same session never interleave; the selector itself
// stays single-owner.
type Session struct {
	ID string

	mu       sync.Mutex
	selector *planner.Selector
	lastUsed time.Time
}

// With runs f while holding the session's lock and marks the session used.
func (s *Session) With(f func(*planner.Selector)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = nowFn()
	f(s.selector)
}

// Registry is the in-memory session table.
type Registry struct {
	catalog *catalog.Catalog
	ttl     time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(c *catalog.Catalog, ttl time.Duration) *Registry {
	return &Registry{
		catalog:  c,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh session with its own selector and empty plan.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		selector: planner.NewSelector(r.catalog),
		lastUsed: nowFn(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return s, nil
}

// Len reports how many sessions are alive.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Janitor drops sessions idle past the registry ttl, checking every
// interval, until ctx is done.
func (r *Registry) Janitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.sweep(nowFn().Add(-r.ttl)); n > 0 {
				slog.InfoContext(ctx, "swept idle sessions", "count", n, "ttl", r.ttl)
			}
		}
	}
}

func (r *Registry) sweep(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := s.lastUsed.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
