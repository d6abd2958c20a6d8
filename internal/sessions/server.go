package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"semainier/internal/catalog"
	"semainier/internal/grocery"
	"semainier/internal/planner"
)

// server exposes the planning contract over JSON. Every endpoint is a thin
// delegation to one engine operation; recoverable engine errors come back
// as 400 with the error text, unknown sessions as 404.
type server struct {
	registry *Registry
	catalog  *catalog.Catalog
}

func NewHandler(registry *Registry, c *catalog.Catalog) *server {
	return &server{registry: registry, catalog: c}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /sessions", s.handleCreate)
	mux.HandleFunc("GET /categories", s.handleCategories)
	mux.HandleFunc("GET /sessions/{id}/plan", s.handlePlan)
	mux.HandleFunc("POST /sessions/{id}/lunch", s.handleLunch)
	mux.HandleFunc("POST /sessions/{id}/dinners", s.handleDinners)
	mux.HandleFunc("POST /sessions/{id}/locks", s.handleLocks)
	mux.HandleFunc("GET /sessions/{id}/groceries", s.handleGroceries)
}

type recipeView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func viewRecipe(r *catalog.Recipe) *recipeView {
	if r == nil {
		return nil
	}
	return &recipeView{Name: r.Name, Category: r.Category}
}

type planView struct {
	Lunch   *recipeView   `json:"lunch,omitempty"`
	Dinners []*recipeView `json:"dinners"`
	Locked  []bool        `json:"locked"`
}

func viewPlan(p planner.Plan) planView {
	v := planView{
		Lunch:   viewRecipe(p.Lunch),
		Dinners: make([]*recipeView, planner.DinnerSlots),
		Locked:  p.Locked[:],
	}
	for i, d := range p.Dinners {
		v.Dinners[i] = viewRecipe(d)
	}
	return v
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.registry.Create()
	slog.InfoContext(r.Context(), "created planning session", "session", sess.ID)
	writeJSON(r.Context(), w, map[string]string{"id": sess.ID})
}

func (s *server) handleCategories(w http.ResponseWriter, r *http.Request) {
	mt := catalog.MealDinner
	if r.URL.Query().Get("meal") == string(catalog.MealLunch) {
		mt = catalog.MealLunch
	}
	writeJSON(r.Context(), w, map[string][]string{"categories": s.catalog.Categories(mt)})
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var plan planner.Plan
	sess.With(func(sel *planner.Selector) { plan = sel.CurrentPlan() })
	writeJSON(r.Context(), w, viewPlan(plan))
}

func (s *server) handleLunch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Category string `json:"category"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	var (
		pick *catalog.Recipe
		err  error
	)
	sess.With(func(sel *planner.Selector) { pick, err = sel.GenerateLunch(body.Category) })
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, viewRecipe(pick))
}

func (s *server) handleDinners(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Quota map[string]int `json:"quota"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	var (
		dinners []*catalog.Recipe
		err     error
	)
	sess.With(func(sel *planner.Selector) { dinners, err = sel.GenerateDinners(body.Quota) })
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	views := make([]*recipeView, len(dinners))
	for i, d := range dinners {
		views[i] = viewRecipe(d)
	}
	writeJSON(r.Context(), w, map[string]any{"dinners": views})
}

func (s *server) handleLocks(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Index  int  `json:"index"`
		Locked bool `json:"locked"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	var (
		plan planner.Plan
		err  error
	)
	sess.With(func(sel *planner.Selector) {
		if err = sel.SetLock(body.Index, body.Locked); err == nil {
			plan = sel.CurrentPlan()
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, viewPlan(plan))
}

func (s *server) handleGroceries(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var plan planner.Plan
	sess.With(func(sel *planner.Selector) { plan = sel.CurrentPlan() })
	writeJSON(r.Context(), w, map[string][]grocery.Line{"items": grocery.Aggregate(plan)})
}

func (s *server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.registry.Get(r.PathValue("id"))
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			slog.ErrorContext(r.Context(), "session lookup failed", "error", err)
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// decodeBody fills v from the request body; an empty body leaves v zeroed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
