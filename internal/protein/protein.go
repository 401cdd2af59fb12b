// internal/protein/protein.go
package protein

import (
	"fmt"

	"health-calc/internal/models"
)

// PlannerRatePerKg is the fixed g/kg rate the meal planner targets.
const PlannerRatePerKg = 1.6

// Base daily protein, g per kg of body weight.
var baseRates = map[models.ActivityLevel]float64{
	models.Sedentary:        0.8,
	models.LightExercise:    1.0,
	models.ModerateExercise: 1.2,
	models.IntenseExercise:  1.6,
	models.Athlete:          2.0,
}

var goalMultipliers = map[models.Goal]float64{
	models.Maintenance:    1.0,
	models.MuscleBuilding: 1.2,
	models.FatLoss:        1.1,
}

// ActivityLevels lists the levels in display order.
var ActivityLevels = []models.ActivityLevel{
	models.Sedentary, models.LightExercise, models.ModerateExercise, models.IntenseExercise, models.Athlete,
}

// Goals lists the goals in display order.
var Goals = []models.Goal{models.Maintenance, models.MuscleBuilding, models.FatLoss}

// RatePerKg returns the combined g/kg rate for an activity level and goal.
func RatePerKg(activity models.ActivityLevel, goal models.Goal) (float64, error) {
	base, ok := baseRates[activity]
	if !ok {
		return 0, fmt.Errorf("%w: %w: unknown activity level %q", models.ErrInvalidInput, models.ErrConfigurationGap, activity)
	}
	mult, ok := goalMultipliers[goal]
	if !ok {
		return 0, fmt.Errorf("%w: %w: unknown goal %q", models.ErrInvalidInput, models.ErrConfigurationGap, goal)
	}
	return base * mult, nil
}

// DailyRequirement returns grams of protein per day.
func DailyRequirement(weightKg float64, activity models.ActivityLevel, goal models.Goal) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", models.ErrInvalidInput, weightKg)
	}
	rate, err := RatePerKg(activity, goal)
	if err != nil {
		return 0, err
	}
	return weightKg * rate, nil
}

// PlannerTarget is the daily protein target used by the meal planner.
func PlannerTarget(weightKg float64) float64 {
	return weightKg * PlannerRatePerKg
}
