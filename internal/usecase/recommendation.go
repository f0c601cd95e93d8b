package usecase

import "github.com/applimenta/backend/internal/domain"

// Baseline daily intake targets, based on the Colombian dietary guidelines.
const (
	baselineCalories = 2000.0
	baselineProtein  = 50.0
	baselineCarbs    = 275.0
	baselineFat      = 70.0
	baselineFiber    = 25.0
	baselineSugar    = 50.0
	baselineSodium   = 2.3
)

// Calorie multipliers per activity level.
const (
	lowActivityFactor  = 0.9
	highActivityFactor = 1.2
)

// DailyTargets computes daily recommended intake targets from demographic
// inputs. Sex values "masculino" and "femenino" adjust calories and protein;
// anything else keeps the baseline. Activity "bajo" scales calories by 0.9
// and "alto" by 1.2; "moderado" or anything unrecognized leaves them as is.
// The age parameter is accepted for forward compatibility but does not
// currently alter the result.
func DailyTargets(age int, sex, activityLevel string) domain.RecommendationSet {
	_ = age

	targets := domain.RecommendationSet{
		Calories:      baselineCalories,
		Protein:       baselineProtein,
		Carbohydrates: baselineCarbs,
		Fat:           baselineFat,
		Fiber:         baselineFiber,
		Sugar:         baselineSugar,
		Sodium:        baselineSodium,
	}

	switch sex {
	case "masculino":
		targets.Calories = 2500
		targets.Protein = 56
	case "femenino":
		targets.Calories = 2000
		targets.Protein = 46
	}

	switch activityLevel {
	case "bajo":
		targets.Calories *= lowActivityFactor
	case "alto":
		targets.Calories *= highActivityFactor
	}

	return targets
}
