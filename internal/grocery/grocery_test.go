package grocery

import (
	"reflect"
	"testing"

	"semainier/internal/catalog"
	"semainier/internal/planner"
)

func TestAggregate_SumsAcrossLunchAndDinners(t *testing.T) {
	p := planner.Plan{
		Lunch: &catalog.Recipe{
			Name:        "Lunch - Omelette",
			Category:    "Veg",
			Ingredients: map[string]float64{"eggs": 2},
			Units:       map[string]string{"eggs": "pcs"},
		},
	}
	p.Dinners[0] = &catalog.Recipe{
		Name:        "Shakshuka",
		Category:    "Veg",
		Ingredients: map[string]float64{"eggs": 3},
		Units:       map[string]string{"eggs": "pcs"},
	}

	got := Aggregate(p)
	want := []Line{{Ingredient: "eggs", Quantity: 5, Unit: "pcs"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAggregate_EmptyPlan(t *testing.T) {
	got := Aggregate(planner.Plan{})
	if len(got) != 0 {
		t.Fatalf("expected no lines for an empty plan, got %v", got)
	}
}

func TestAggregate_LastUnitWins(t *testing.T) {
	p := planner.Plan{
		Lunch: &catalog.Recipe{
			Name:        "Lunch - Rice Bowl",
			Category:    "Veg",
			Ingredients: map[string]float64{"rice": 2},
			Units:       map[string]string{"rice": "cups"},
		},
	}
	p.Dinners[4] = &catalog.Recipe{
		Name:        "Fried Rice",
		Category:    "Veg",
		Ingredients: map[string]float64{"rice": 3},
		Units:       map[string]string{"rice": "tbsp"},
	}

	got := Aggregate(p)
	// quantities from different units still sum; the last unit seen sticks
	want := []Line{{Ingredient: "rice", Quantity: 5, Unit: "tbsp"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAggregate_MissingUnitOverwritesWithEmpty(t *testing.T) {
	p := planner.Plan{
		Lunch: &catalog.Recipe{
			Name:        "Lunch - Omelette",
			Category:    "Veg",
			Ingredients: map[string]float64{"eggs": 2},
			Units:       map[string]string{"eggs": "pcs"},
		},
	}
	p.Dinners[0] = &catalog.Recipe{
		Name:        "Shakshuka",
		Category:    "Veg",
		Ingredients: map[string]float64{"eggs": 3},
	}

	got := Aggregate(p)
	want := []Line{{Ingredient: "eggs", Quantity: 5, Unit: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAggregate_SortedAndSkipsEmptySlots(t *testing.T) {
	var p planner.Plan
	p.Dinners[1] = &catalog.Recipe{
		Name:        "Beef Stew",
		Category:    "Meat",
		Ingredients: map[string]float64{"onion": 2, "beef": 500, "carrot": 3},
		Units:       map[string]string{"beef": "g"},
	}
	p.Dinners[3] = &catalog.Recipe{
		Name:        "Roast Chicken",
		Category:    "Meat",
		Ingredients: map[string]float64{"chicken": 1, "carrot": 2},
	}

	got := Aggregate(p)
	want := []Line{
		{Ingredient: "beef", Quantity: 500, Unit: "g"},
		{Ingredient: "carrot", Quantity: 5},
		{Ingredient: "chicken", Quantity: 1},
		{Ingredient: "onion", Quantity: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	p := planner.Plan{
		Lunch: &catalog.Recipe{
			Name:        "Lunch - Caprese Wrap",
			Category:    "Veg",
			Ingredients: map[string]float64{"tomato": 2, "mozzarella": 125},
			Units:       map[string]string{"mozzarella": "g"},
		},
	}

	first := Aggregate(p)
	second := Aggregate(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two aggregations of the same plan differ: %v vs %v", first, second)
	}
}

func TestAggregate_MergesUnicodeSpellings(t *testing.T) {
	// composed é vs decomposed e+́: catalog normalization must
	// fold both spellings onto one line
	c, err := catalog.New([]catalog.Recipe{
		{Name: "Lunch - Crudités", Category: "Veg", Ingredients: map[string]float64{"céleri": 1}},
		{Name: "Gratin", Category: "Veg", Ingredients: map[string]float64{"céleri": 2}},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	p := planner.Plan{Lunch: c.Lunches()[0]}
	p.Dinners[0] = c.Dinners()[0]

	got := Aggregate(p)
	if len(got) != 1 {
		t.Fatalf("expected one merged line, got %v", got)
	}
	if got[0].Ingredient != "céleri" || got[0].Quantity != 3 {
		t.Fatalf("expected céleri quantity 3, got %+v", got[0])
	}
}
