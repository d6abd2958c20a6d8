package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Catalog is the fixed recipe set partitioned into lunch and dinner pools.
// The partition is computed once in New and immutable afterwards. Pool
// entries point into a catalog-owned backing array, so pointer identity is
// recipe identity for the rest of the program.
type Catalog struct {
	recipes []Recipe
	lunch   []*Recipe
	dinner  []*Recipe
}

// LoadError reports a catalog that could not be read or did not hold valid
// recipe records. Fatal at startup, not recoverable by the core.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// New builds a catalog from recipe records, validating and partitioning
// them. The input slice is copied; callers keep no handle on the backing
// array.
func New(recs []Recipe) (*Catalog, error) {
	c := &Catalog{recipes: make([]Recipe, len(recs))}
	copy(c.recipes, recs)

	for i := range c.recipes {
		r := &c.recipes[i]
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		r.normalize()
		r.Meal = mealOf(r.Name)
		switch r.Meal {
		case MealLunch:
			c.lunch = append(c.lunch, r)
		default:
			c.dinner = append(c.dinner, r)
		}
	}
	return c, nil
}

// Load reads the whole document from src and decodes it as a JSON array of
// recipe records, or YAML when the source name carries a .yaml/.yml
// extension. Every failure comes back as a *LoadError.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close catalog source", "source", src.Name(), "error", err)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	var recs []Recipe
	if isYAML(src.Name()) {
		err = yaml.Unmarshal(data, &recs)
	} else {
		err = json.Unmarshal(data, &recs)
	}
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	c, err := New(recs)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	slog.InfoContext(ctx, "catalog loaded", "source", src.Name(),
		"recipes", len(c.recipes), "lunch", len(c.lunch), "dinner", len(c.dinner))
	return c, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Categories returns the distinct category names of the pool for mt, sorted
// lexicographically. Anything other than MealLunch reads the dinner pool.
func (c *Catalog) Categories(mt MealType) []string {
	pool := c.dinner
	if mt == MealLunch {
		pool = c.lunch
	}
	cats := lo.Uniq(lo.Map(pool, func(r *Recipe, _ int) string { return r.Category }))
	sort.Strings(cats)
	return cats
}

// Lunches returns the lunch pool. Shared slice, treat as read-only.
func (c *Catalog) Lunches() []*Recipe { return c.lunch }

// Dinners returns the dinner pool. Shared slice, treat as read-only.
func (c *Catalog) Dinners() []*Recipe { return c.dinner }

// Len reports the total number of recipes.
func (c *Catalog) Len() int { return len(c.recipes) }
