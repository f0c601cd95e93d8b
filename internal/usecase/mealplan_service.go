package usecase

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/applimenta/backend/internal/domain"
)

// Items sampled per meal slot.
const (
	breakfastItems = 2
	lunchItems     = 3
	dinnerItems    = 2
)

// weeklyPlanDays is the number of independent daily plans in a weekly plan.
const weeklyPlanDays = 7

// MealPlanGenerator builds daily and weekly meal plans by uniform sampling
// from a product pool. Generation is side-effect free apart from consuming
// randomness; persisting a plan is the caller's concern.
type MealPlanGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMealPlanGenerator creates a generator seeded from the current time.
func NewMealPlanGenerator() *MealPlanGenerator {
	return &MealPlanGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// GenerateDailyPlan samples breakfast, lunch, and dinner from the pool and
// computes per-slot and plan-level nutrition totals. Each slot is drawn
// without replacement; a pool smaller than the requested count yields all
// available items. Snacks stay empty for callers to fill in.
func (g *MealPlanGenerator) GenerateDailyPlan(pool []domain.RawProduct) domain.MealPlan {
	return g.dailyPlanFor(pool, g.now().Format("2006-01-02"))
}

// GenerateWeeklyPlan produces exactly seven independent daily plans, one per
// upcoming day. Repetition across days is expected: each day samples the
// pool from scratch.
func (g *MealPlanGenerator) GenerateWeeklyPlan(pool []domain.RawProduct) []domain.MealPlan {
	start := g.now()
	plans := make([]domain.MealPlan, 0, weeklyPlanDays)
	for day := 0; day < weeklyPlanDays; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		plans = append(plans, g.dailyPlanFor(pool, date))
	}
	return plans
}

func (g *MealPlanGenerator) dailyPlanFor(pool []domain.RawProduct, date string) domain.MealPlan {
	breakfast, breakfastSum := buildMeal(g.sample(pool, breakfastItems))
	lunch, lunchSum := buildMeal(g.sample(pool, lunchItems))
	dinner, dinnerSum := buildMeal(g.sample(pool, dinnerItems))
	snacks, _ := buildMeal(nil)

	total := breakfastSum.add(lunchSum).add(dinnerSum)

	return domain.MealPlan{
		ID:        uuid.NewString(),
		Date:      date,
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
		Snacks:    snacks,
		Totals:    total.rounded(),
	}
}

// sample draws up to n items from the pool uniformly, without replacement
// within the draw. The pool itself is never mutated.
func (g *MealPlanGenerator) sample(pool []domain.RawProduct, n int) []domain.RawProduct {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	remaining := make([]domain.RawProduct, len(pool))
	copy(remaining, pool)

	g.mu.Lock()
	defer g.mu.Unlock()

	var out []domain.RawProduct
	for i := 0; i < n && len(remaining) > 0; i++ {
		idx := g.rng.Intn(len(remaining))
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

// buildMeal normalizes the sampled records into meal items and accumulates
// their raw nutrition values. Rounding happens once, on the accumulated sum.
func buildMeal(raws []domain.RawProduct) (domain.Meal, macroSum) {
	items := make([]domain.MealItem, 0, len(raws))
	var sum macroSum

	for _, raw := range raws {
		product := Normalize(raw)
		items = append(items, domain.MealItem{
			ID:       product.ID,
			Name:     product.Name,
			Brand:    product.Brand,
			ImageURL: product.ImageURL,
			Calories: product.Nutrition.Calories,
		})

		sum.calories += product.Nutrition.Calories
		sum.protein += product.Nutrition.Protein
		sum.carbs += product.Nutrition.Carbohydrates
		sum.fat += product.Nutrition.Fat
	}

	return domain.Meal{Items: items, Totals: sum.rounded()}, sum
}

// macroSum accumulates unrounded nutrition values across meal items.
type macroSum struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func (s macroSum) add(other macroSum) macroSum {
	return macroSum{
		calories: s.calories + other.calories,
		protein:  s.protein + other.protein,
		carbs:    s.carbs + other.carbs,
		fat:      s.fat + other.fat,
	}
}

func (s macroSum) rounded() domain.MealTotals {
	return domain.MealTotals{
		Calories: int(math.Round(s.calories)),
		Protein:  roundToTenth(s.protein),
		Carbs:    roundToTenth(s.carbs),
		Fat:      roundToTenth(s.fat),
	}
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
