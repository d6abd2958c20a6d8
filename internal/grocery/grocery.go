// Package grocery folds a plan's selected recipes into one shopping list.
package grocery

import (
	"sort"

	"github.com/samber/lo"

	"semainier/internal/catalog"
	"semainier/internal/planner"
)

// Line is one aggregated shopping-list entry.
type Line struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
}

// Aggregate sums ingredient quantities across the selected lunch and every
// filled dinner slot, sorted by ingredient name. The unit on a line is the
// one from the last recipe that mentioned the ingredient (lunch first, then
// dinners in slot order), or "" when that recipe carried none. Mismatched
// units are NOT reconciled: 2 cups + 3 tbsp comes out as 5 of whichever
// unit was seen last. Known limitation, kept on purpose.
func Aggregate(p planner.Plan) []Line {
	totals := map[string]float64{}
	units := map[string]string{}

	add := func(r *catalog.Recipe) {
		if r == nil {
			return
		}
		for ingredient, qty := range r.Ingredients {
			totals[ingredient] += qty
			units[ingredient] = r.Units[ingredient]
		}
	}
	add(p.Lunch)
	for _, d := range p.Dinners {
		add(d)
	}

	ingredients := lo.Keys(totals)
	sort.Strings(ingredients)
	return lo.Map(ingredients, func(ingredient string, _ int) Line {
		return Line{Ingredient: ingredient, Quantity: totals[ingredient], Unit: units[ingredient]}
	})
}
