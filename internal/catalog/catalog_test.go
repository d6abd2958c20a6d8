package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func validRecipes() []Recipe {
	return []Recipe{
		{Name: "Lunch - Caprese Wrap", Category: "Veg", Ingredients: map[string]float64{"tomato": 2}},
		{Name: "Lunch - Chicken Caesar", Category: "Meat", Ingredients: map[string]float64{"chicken": 1}},
		{Name: "Ratatouille", Category: "Veg", Ingredients: map[string]float64{"eggplant": 1}},
		{Name: "Roast Chicken", Category: "Meat", Ingredients: map[string]float64{"chicken": 1}},
		{Name: "Grilled Salmon", Category: "Fish", Ingredients: map[string]float64{"salmon": 2}},
	}
}

func TestNew_PartitionsByNamePrefix(t *testing.T) {
	c, err := New(validRecipes())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(c.Lunches()) != 2 {
		t.Fatalf("expected 2 lunch recipes, got %d", len(c.Lunches()))
	}
	if len(c.Dinners()) != 3 {
		t.Fatalf("expected 3 dinner recipes, got %d", len(c.Dinners()))
	}
	for _, r := range c.Lunches() {
		if r.Meal != MealLunch {
			t.Errorf("lunch recipe %q has meal %q", r.Name, r.Meal)
		}
	}
	for _, r := range c.Dinners() {
		if r.Meal != MealDinner {
			t.Errorf("dinner recipe %q has meal %q", r.Name, r.Meal)
		}
	}
}

func TestNew_RejectsIncompleteRecipes(t *testing.T) {
	cases := []struct {
		name   string
		recipe Recipe
	}{
		{"missing name", Recipe{Category: "Veg", Ingredients: map[string]float64{}}},
		{"blank name", Recipe{Name: "  ", Category: "Veg", Ingredients: map[string]float64{}}},
		{"missing category", Recipe{Name: "Ratatouille", Ingredients: map[string]float64{}}},
		{"missing ingredients", Recipe{Name: "Ratatouille", Category: "Veg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New([]Recipe{tc.recipe}); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestCategories_SortedAndDistinct(t *testing.T) {
	c, err := New(validRecipes())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lunch := c.Categories(MealLunch)
	if !reflect.DeepEqual(lunch, []string{"Meat", "Veg"}) {
		t.Fatalf("expected lunch categories [Meat Veg], got %v", lunch)
	}

	dinner := c.Categories(MealDinner)
	if !reflect.DeepEqual(dinner, []string{"Fish", "Meat", "Veg"}) {
		t.Fatalf("expected dinner categories [Fish Meat Veg], got %v", dinner)
	}

	// only MealLunch selects the lunch pool, anything else reads dinner
	if got := c.Categories(MealType("brunch")); !reflect.DeepEqual(got, dinner) {
		t.Fatalf("expected unknown meal type to read the dinner pool, got %v", got)
	}
}

func TestLoad_JSON(t *testing.T) {
	doc := `[
		{"name": "Lunch - Lentil Soup", "category": "Veg", "ingredients": {"lentils": 200}, "units": {"lentils": "g"}},
		{"name": "Beef Stew", "category": "Meat", "ingredients": {"beef": 500, "onion": 2}, "units": {"beef": "g"}}
	]`

	c, err := Load(t.Context(), NewMemorySource("recipes.json", []byte(doc)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 recipes, got %d", c.Len())
	}
	if len(c.Lunches()) != 1 || c.Lunches()[0].Name != "Lunch - Lentil Soup" {
		t.Fatalf("unexpected lunch pool: %v", c.Lunches())
	}
	if got := c.Dinners()[0].Ingredients["beef"]; got != 500 {
		t.Fatalf("expected 500 beef, got %v", got)
	}
	if got := c.Dinners()[0].Units["beef"]; got != "g" {
		t.Fatalf("expected unit g, got %q", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	doc := `
- name: Lunch - Lentil Soup
  category: Veg
  ingredients:
    lentils: 200
- name: Beef Stew
  category: Meat
  ingredients:
    beef: 500
`
	c, err := Load(t.Context(), NewMemorySource("recipes.yaml", []byte(doc)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.Lunches()) != 1 || len(c.Dinners()) != 1 {
		t.Fatalf("unexpected partition: %d lunches, %d dinners", len(c.Lunches()), len(c.Dinners()))
	}
}

func TestLoad_MalformedDocument(t *testing.T) {
	_, err := Load(t.Context(), NewMemorySource("recipes.json", []byte(`{"not": "an array"`)))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Source != "recipes.json" {
		t.Fatalf("expected source recipes.json, got %q", loadErr.Source)
	}
}

func TestLoad_MissingRequiredField(t *testing.T) {
	doc := `[{"name": "Beef Stew", "category": "Meat"}]`

	_, err := Load(t.Context(), NewMemorySource("recipes.json", []byte(doc)))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError for missing ingredients, got %v", err)
	}
}

func TestLoad_UnreadableSource(t *testing.T) {
	_, err := Load(t.Context(), NewFileSource("testdata/does-not-exist.json"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError for missing file, got %v", err)
	}
}

func TestNew_NormalizesNames(t *testing.T) {
	// decomposed e+combining acute must come out NFC composed
	c, err := New([]Recipe{
		{Name: "Purée", Category: "Légumes", Ingredients: map[string]float64{"céleri": 2}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r := c.Dinners()[0]
	if r.Category != "Légumes" {
		t.Fatalf("category not normalized: %q", r.Category)
	}
	if _, ok := r.Ingredients["céleri"]; !ok {
		t.Fatalf("ingredient key not normalized: %v", r.Ingredients)
	}
}
