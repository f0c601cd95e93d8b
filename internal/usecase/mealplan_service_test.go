package usecase

import (
	"math/rand"
	"testing"
	"time"

	"github.com/applimenta/backend/internal/domain"
)

func fixedGenerator(seed int64) *MealPlanGenerator {
	return &MealPlanGenerator{
		rng: rand.New(rand.NewSource(seed)),
		now: func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func planPool() []domain.RawProduct {
	return []domain.RawProduct{
		{
			"id":           "p1",
			"product_name": "Arepa",
			"nutriments": map[string]any{
				"energy-kcal_100g":   100.6,
				"proteins_100g":      1.2,
				"carbohydrates_100g": 10.3,
				"fat_100g":           0.5,
			},
		},
		{
			"id":           "p2",
			"product_name": "Aguacate",
			"nutriments": map[string]any{
				"energy-kcal_100g":   50.1,
				"proteins_100g":      2.4,
				"carbohydrates_100g": 5.1,
				"fat_100g":           1.2,
			},
		},
	}
}

func TestGenerateDailyPlan_SlotSizes(t *testing.T) {
	pool := make([]domain.RawProduct, 0, 10)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		pool = append(pool, domain.RawProduct{"id": name, "product_name": name})
	}

	plan := fixedGenerator(1).GenerateDailyPlan(pool)

	if len(plan.Breakfast.Items) != breakfastItems {
		t.Errorf("breakfast items = %d, want %d", len(plan.Breakfast.Items), breakfastItems)
	}
	if len(plan.Lunch.Items) != lunchItems {
		t.Errorf("lunch items = %d, want %d", len(plan.Lunch.Items), lunchItems)
	}
	if len(plan.Dinner.Items) != dinnerItems {
		t.Errorf("dinner items = %d, want %d", len(plan.Dinner.Items), dinnerItems)
	}
	if len(plan.Snacks.Items) != 0 {
		t.Errorf("snacks items = %d, want 0 (caller-populated)", len(plan.Snacks.Items))
	}
	if plan.ID == "" {
		t.Error("plan ID is empty")
	}
	if plan.Date != "2025-03-10" {
		t.Errorf("Date = %q, want 2025-03-10", plan.Date)
	}
}

func TestGenerateDailyPlan_NoDuplicatesWithinSlot(t *testing.T) {
	pool := make([]domain.RawProduct, 0, 5)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		pool = append(pool, domain.RawProduct{"id": name, "product_name": name})
	}
	generator := fixedGenerator(7)

	for i := 0; i < 25; i++ {
		plan := generator.GenerateDailyPlan(pool)
		for _, meal := range []domain.Meal{plan.Breakfast, plan.Lunch, plan.Dinner} {
			seen := make(map[string]bool)
			for _, item := range meal.Items {
				if seen[item.ID] {
					t.Fatalf("item %q appears twice within one slot", item.ID)
				}
				seen[item.ID] = true
			}
		}
	}
}

func TestGenerateDailyPlan_SmallPoolYieldsAllItems(t *testing.T) {
	plan := fixedGenerator(3).GenerateDailyPlan(planPool())

	// Lunch asks for 3 but the pool only has 2; sampling stops at exhaustion.
	if len(plan.Lunch.Items) != 2 {
		t.Errorf("lunch items = %d, want the whole pool (2)", len(plan.Lunch.Items))
	}
	if len(plan.Breakfast.Items) != 2 || len(plan.Dinner.Items) != 2 {
		t.Errorf("breakfast/dinner items = %d/%d, want 2/2",
			len(plan.Breakfast.Items), len(plan.Dinner.Items))
	}
}

func TestGenerateDailyPlan_Totals(t *testing.T) {
	// Every slot drains the two-item pool, so slot totals are fully
	// determined regardless of sampling order.
	plan := fixedGenerator(5).GenerateDailyPlan(planPool())

	wantSlot := domain.MealTotals{Calories: 151, Protein: 3.6, Carbs: 15.4, Fat: 1.7}
	for name, meal := range map[string]domain.Meal{
		"breakfast": plan.Breakfast,
		"lunch":     plan.Lunch,
		"dinner":    plan.Dinner,
	} {
		if meal.Totals != wantSlot {
			t.Errorf("%s totals = %+v, want %+v", name, meal.Totals, wantSlot)
		}
	}

	// Plan totals are rounded over the raw sum across slots, not over the
	// already-rounded slot totals.
	wantPlan := domain.MealTotals{Calories: 452, Protein: 10.8, Carbs: 46.2, Fat: 5.1}
	if plan.Totals != wantPlan {
		t.Errorf("plan totals = %+v, want %+v", plan.Totals, wantPlan)
	}

	if plan.Snacks.Totals != (domain.MealTotals{}) {
		t.Errorf("snacks totals = %+v, want zero", plan.Snacks.Totals)
	}
}

func TestGenerateDailyPlan_TotalsAreReproducible(t *testing.T) {
	first := fixedGenerator(42).GenerateDailyPlan(planPool())
	second := fixedGenerator(42).GenerateDailyPlan(planPool())

	if first.Totals != second.Totals {
		t.Errorf("totals differ for identical samples: %+v vs %+v", first.Totals, second.Totals)
	}
	if first.Breakfast.Totals != second.Breakfast.Totals {
		t.Errorf("breakfast totals differ: %+v vs %+v", first.Breakfast.Totals, second.Breakfast.Totals)
	}
}

func TestGenerateDailyPlan_EmptyPool(t *testing.T) {
	plan := fixedGenerator(1).GenerateDailyPlan(nil)

	if len(plan.Breakfast.Items) != 0 || len(plan.Lunch.Items) != 0 || len(plan.Dinner.Items) != 0 {
		t.Errorf("plan from empty pool has items: %+v", plan)
	}
	if plan.Totals != (domain.MealTotals{}) {
		t.Errorf("totals = %+v, want zero", plan.Totals)
	}
}

func TestGenerateWeeklyPlan_AlwaysSevenDays(t *testing.T) {
	tests := []struct {
		name string
		pool []domain.RawProduct
	}{
		{"full pool", planPool()},
		{"single item", planPool()[:1]},
		{"empty pool", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := fixedGenerator(9).GenerateWeeklyPlan(tt.pool)
			if len(plans) != weeklyPlanDays {
				t.Errorf("weekly plan has %d days, want %d", len(plans), weeklyPlanDays)
			}
		})
	}
}

func TestGenerateWeeklyPlan_SequentialDates(t *testing.T) {
	plans := fixedGenerator(2).GenerateWeeklyPlan(planPool())

	if plans[0].Date != "2025-03-10" {
		t.Errorf("first date = %q, want 2025-03-10", plans[0].Date)
	}
	if plans[6].Date != "2025-03-16" {
		t.Errorf("last date = %q, want 2025-03-16", plans[6].Date)
	}
}

func TestGenerateWeeklyPlan_DistinctPlanIDs(t *testing.T) {
	plans := fixedGenerator(4).GenerateWeeklyPlan(planPool())

	seen := make(map[string]bool)
	for _, plan := range plans {
		if seen[plan.ID] {
			t.Fatalf("duplicate plan ID %q", plan.ID)
		}
		seen[plan.ID] = true
	}
}
