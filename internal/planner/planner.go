package planner

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/samber/lo"

	"semainier/internal/catalog"
)

// DinnerSlots is the fixed size of the weekly dinner plan.
const DinnerSlots = 5

// Plan is the selection state of one planning session: the chosen lunch,
// the five dinner slots and their locks. It is a value type; CurrentPlan
// hands out copies so callers can never reach into the selector's state.
type Plan struct {
	Lunch   *catalog.Recipe
	Dinners [DinnerSlots]*catalog.Recipe
	Locked  [DinnerSlots]bool
}

// FreeSlots counts the slots regeneration is allowed to fill.
func (p Plan) FreeSlots() int {
	return lo.CountBy(p.Locked[:], func(locked bool) bool { return !locked })
}

// Selector owns one Plan and fills it from the catalog pools. It is not
// safe for concurrent use; give each caller context its own Selector.
type Selector struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	plan    Plan
}

// NewSelector returns a selector with an empty plan and a time-seeded rng.
func NewSelector(c *catalog.Catalog) *Selector {
	return NewSeededSelector(c, time.Now().UnixNano())
}

// NewSeededSelector pins the randomness so runs can be reproduced.
func NewSeededSelector(c *catalog.Catalog, seed int64) *Selector {
	return &Selector{
		catalog: c,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// CurrentPlan returns a read-only snapshot of the plan.
func (s *Selector) CurrentPlan() Plan { return s.plan }

// GenerateLunch picks a lunch uniformly at random, from the whole lunch
// pool or from one category when category is non-empty. On ErrNoMatch the
// previously selected lunch stays in place.
func (s *Selector) GenerateLunch(category string) (*catalog.Recipe, error) {
	pool := s.catalog.Lunches()
	if category != "" {
		pool = lo.Filter(pool, func(r *catalog.Recipe, _ int) bool { return r.Category == category })
	}
	if len(pool) == 0 {
		if category == "" {
			return nil, fmt.Errorf("lunch pool is empty: %w", ErrNoMatch)
		}
		return nil, fmt.Errorf("no lunch recipes in category %q: %w", category, ErrNoMatch)
	}

	pick := pool[s.rng.Intn(len(pool))]
	s.plan.Lunch = pick
	return pick, nil
}

// GenerateDinners rebuilds the five dinner slots. Locked slots keep their
// recipe (a locked recipe consumes its category's allowance, possibly
// driving it past zero, which just means no new picks for that category);
// the remaining slots are filled in ascending order by drawing a category
// with allowance left, then a recipe from that category not already in the
// new plan. A slot whose drawn category has no unused recipe left is left
// empty without consuming allowance and without error; there is no
// backtracking into earlier slots. The quota map is never mutated.
func (s *Selector) GenerateDinners(quota map[string]int) ([]*catalog.Recipe, error) {
	for cat, n := range quota {
		if n < 0 {
			return nil, fmt.Errorf("category %q has count %d: %w", cat, n, ErrNegativeQuota)
		}
	}

	free := s.plan.FreeSlots()
	total := lo.Sum(lo.Values(quota))
	if total != free {
		return nil, &QuotaMismatchError{Expected: free, Actual: total}
	}

	remaining := make(map[string]int, len(quota))
	for cat, n := range quota {
		remaining[cat] = n
	}

	var next [DinnerSlots]*catalog.Recipe
	for i, locked := range s.plan.Locked {
		if !locked {
			continue
		}
		kept := s.plan.Dinners[i]
		next[i] = kept
		if kept == nil {
			continue
		}
		if _, ok := remaining[kept.Category]; ok {
			remaining[kept.Category]--
		}
	}

	for i := range next {
		if s.plan.Locked[i] {
			continue
		}

		var open []string
		for cat, n := range remaining {
			if n > 0 {
				open = append(open, cat)
			}
		}
		if len(open) == 0 {
			continue
		}
		// map order is random; sort so a seeded rng reproduces the plan
		sort.Strings(open)
		cat := open[s.rng.Intn(len(open))]

		candidates := lo.Filter(s.catalog.Dinners(), func(r *catalog.Recipe, _ int) bool {
			return r.Category == cat && !lo.Contains(next[:], r)
		})
		if len(candidates) == 0 {
			slog.Warn("category starved, leaving dinner slot empty", "category", cat, "slot", i)
			continue
		}

		next[i] = candidates[s.rng.Intn(len(candidates))]
		remaining[cat]--
	}

	s.plan.Dinners = next
	return next[:], nil
}

// SetLock toggles whether regeneration may replace the recipe at index.
// Locking an empty slot is allowed; regeneration then preserves the hole.
func (s *Selector) SetLock(index int, locked bool) error {
	if index < 0 || index >= DinnerSlots {
		return fmt.Errorf("index %d not in [0,%d): %w", index, DinnerSlots, ErrLockIndex)
	}
	s.plan.Locked[index] = locked
	return nil
}
