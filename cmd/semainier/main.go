package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"semainier/internal/catalog"
	"semainier/internal/config"
	"semainier/internal/grocery"
	"semainier/internal/planner"
	"semainier/internal/telemetry"
)

func main() {
	var (
		catalogPath    string
		listCategories bool
		lunchCategory  string
		noLunch        bool
		dinnersSpec    string
		seed           int64
		serve          bool
		addr           string
	)

	flag.StringVar(&catalogPath, "catalog", "", "Catalog file path (overrides CATALOG_* env)")
	flag.BoolVar(&listCategories, "categories", false, "List lunch and dinner categories and exit")
	flag.StringVar(&lunchCategory, "lunch-category", "", "Restrict the lunch pick to one category")
	flag.BoolVar(&noLunch, "no-lunch", false, "Skip the lunch pick")
	flag.StringVar(&dinnersSpec, "dinners", "", `Dinner quota as "Veg=2,Meat=2,Fish=1" (counts must total 5)`)
	flag.Int64Var(&seed, "seed", 0, "Seed the selection rng for reproducible plans (0 = time-seeded)")
	flag.BoolVar(&serve, "serve", false, "Run the HTTP session API")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.Parse()

	// .env is a dev convenience, absence is fine
	_ = godotenv.Load()

	ctx := context.Background()
	shutdownTelemetry, err := telemetry.Setup(ctx, "semainier")
	if err != nil {
		log.Fatalf("failed to set up telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if catalogPath != "" {
		cfg.Catalog = config.CatalogConfig{Path: catalogPath}
	}

	src, err := catalog.MakeSource(cfg)
	if err != nil {
		log.Fatalf("failed to pick catalog source: %v", err)
	}
	// a catalog that won't load is fatal, nothing to recover into
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if listCategories {
		printCategories(cat)
		return
	}

	if serve {
		if err := runServer(ctx, cfg, cat, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if err := run(cat, lunchCategory, noLunch, dinnersSpec, seed); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cat *catalog.Catalog, lunchCategory string, noLunch bool, dinnersSpec string, seed int64) error {
	selector := planner.NewSelector(cat)
	if seed != 0 {
		selector = planner.NewSeededSelector(cat, seed)
	}

	if !noLunch {
		lunch, err := selector.GenerateLunch(lunchCategory)
		if err != nil {
			return fmt.Errorf("could not pick a lunch: %w", err)
		}
		fmt.Printf("Lunch: %s (%s)\n", lunch.Name, lunch.Category)
	}

	if dinnersSpec != "" {
		quota, err := parseQuota(dinnersSpec)
		if err != nil {
			return err
		}
		dinners, err := selector.GenerateDinners(quota)
		if err != nil {
			return fmt.Errorf("could not pick dinners: %w", err)
		}
		fmt.Println("Dinners:")
		for i, d := range dinners {
			if d == nil {
				fmt.Printf("  %d. (unfilled)\n", i+1)
				continue
			}
			fmt.Printf("  %d. %s (%s)\n", i+1, d.Name, d.Category)
		}
	}

	lines := grocery.Aggregate(selector.CurrentPlan())
	if len(lines) == 0 {
		return nil
	}
	fmt.Println("Grocery list:")
	for _, l := range lines {
		if l.Unit != "" {
			fmt.Printf("  %s: %g %s\n", l.Ingredient, l.Quantity, l.Unit)
			continue
		}
		fmt.Printf("  %s: %g\n", l.Ingredient, l.Quantity)
	}
	return nil
}

// parseQuota turns "Veg=2,Meat=3" into a category quota. Repeated
// categories add up.
func parseQuota(spec string) (map[string]int, error) {
	quota := make(map[string]int)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, raw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid quota entry %q, want Category=Count", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid count in quota entry %q: %w", part, err)
		}
		quota[strings.TrimSpace(category)] += n
	}
	return quota, nil
}

func printCategories(cat *catalog.Catalog) {
	fmt.Println("Lunch categories:")
	for _, c := range cat.Categories(catalog.MealLunch) {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println("Dinner categories:")
	for _, c := range cat.Categories(catalog.MealDinner) {
		fmt.Printf("  %s\n", c)
	}
}
