package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// readiness gates /ready on a set of checks and remembers the first time
// they all pass; a service that came up healthy never flips back.
type readiness struct {
	passed atomic.Bool
	checks []func(context.Context) error
}

func (r *readiness) check(ctx context.Context) error {
	if r.passed.Load() {
		return nil
	}
	for _, check := range r.checks {
		if err := check(ctx); err != nil {
			return err
		}
	}
	r.passed.Store(true)
	return nil
}

func (r *readiness) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := r.check(req.Context()); err != nil {
		http.Error(w, "not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.ErrorContext(req.Context(), "failed to write readiness response", "error", err)
	}
}
