package catalog

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MealType says which pool a recipe belongs to.
type MealType string

const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

// lunchNamePrefix is the naming convention the catalog data uses to mark
// lunch recipes. Partitioning happens once at load; after that the Meal
// field is authoritative.
const lunchNamePrefix = "Lunch - "

// Recipe is one entry of the catalog. Loaded once, never mutated.
type Recipe struct {
	Name        string             `json:"name" yaml:"name"`
	Category    string             `json:"category" yaml:"category"`
	Ingredients map[string]float64 `json:"ingredients" yaml:"ingredients"`
	Units       map[string]string  `json:"units,omitempty" yaml:"units,omitempty"`

	// Meal is derived from the name prefix at load time and is not part
	// of the source format.
	Meal MealType `json:"-" yaml:"-"`
}

var (
	errMissingName        = errors.New("missing name")
	errMissingCategory    = errors.New("missing category")
	errMissingIngredients = errors.New("missing ingredients")
)

func (r *Recipe) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errMissingName
	}
	if strings.TrimSpace(r.Category) == "" {
		return errMissingCategory
	}
	if r.Ingredients == nil {
		return errMissingIngredients
	}
	return nil
}

// normalize rewrites all names to NFC so that byte-different spellings of
// the same ingredient end up on one shopping-list line. Units keys are
// normalized the same way so a unit stays attached to its ingredient.
func (r *Recipe) normalize() {
	r.Name = norm.NFC.String(r.Name)
	r.Category = norm.NFC.String(r.Category)
	if r.Ingredients != nil {
		ingredients := make(map[string]float64, len(r.Ingredients))
		for name, qty := range r.Ingredients {
			ingredients[norm.NFC.String(name)] += qty
		}
		r.Ingredients = ingredients
	}
	if r.Units != nil {
		units := make(map[string]string, len(r.Units))
		for name, unit := range r.Units {
			units[norm.NFC.String(name)] = unit
		}
		r.Units = units
	}
}

func mealOf(name string) MealType {
	if strings.HasPrefix(name, lunchNamePrefix) {
		return MealLunch
	}
	return MealDinner
}
