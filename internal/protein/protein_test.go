package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-calc/internal/models"
)

func TestDailyRequirement(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		activity models.ActivityLevel
		goal     models.Goal
		want     float64
	}{
		{"moderate maintenance", 70, models.ModerateExercise, models.Maintenance, 84},
		{"athlete muscle building", 80, models.Athlete, models.MuscleBuilding, 192},
		{"sedentary fat loss", 60, models.Sedentary, models.FatLoss, 52.8},
		{"light exercise", 50, models.LightExercise, models.Maintenance, 50},
		{"intense muscle building", 90, models.IntenseExercise, models.MuscleBuilding, 172.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DailyRequirement(tt.weight, tt.activity, tt.goal)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDailyRequirement_Errors(t *testing.T) {
	_, err := DailyRequirement(0, models.Athlete, models.Maintenance)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.NotErrorIs(t, err, models.ErrConfigurationGap)

	_, err = DailyRequirement(-5, models.Athlete, models.Maintenance)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = DailyRequirement(70, "Couch Potato", models.Maintenance)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.ErrorIs(t, err, models.ErrConfigurationGap)

	_, err = DailyRequirement(70, models.Athlete, "Bulk")
	assert.ErrorIs(t, err, models.ErrConfigurationGap)
}

func TestPlannerTarget(t *testing.T) {
	assert.InDelta(t, 108.8, PlannerTarget(68), 1e-9)
}

func TestRecommend(t *testing.T) {
	rec, err := Recommend(models.WeightInput{Value: 70, Unit: models.Kilograms}, models.ModerateExercise, models.MuscleBuilding)
	require.NoError(t, err)

	assert.InDelta(t, 1.44, rec.ProteinPerKg, 1e-9)
	assert.InDelta(t, 100.8, rec.DailyProtein, 1e-9)
	assert.InDelta(t, 25.2, rec.PerMeal, 1e-9)
	require.Len(t, rec.Distribution, 4)
	assert.Equal(t, "Breakfast", rec.Distribution[0].Meal)
	assert.Equal(t, "Snack", rec.Distribution[3].Meal)

	var sum float64
	for _, v := range rec.Chart.Values {
		sum += v
	}
	assert.InDelta(t, rec.DailyProtein, sum, 1e-9)
	assert.Equal(t, []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4"}, rec.Chart.Colors)
	assert.Equal(t, "Daily Protein Distribution: 100.8g total\n(Muscle Building)", rec.Chart.Title)
}

func TestRecommend_Pounds(t *testing.T) {
	rec, err := Recommend(models.WeightInput{Value: 100, Unit: models.Pounds}, models.Sedentary, models.Maintenance)
	require.NoError(t, err)

	assert.InDelta(t, 45.3592, rec.WeightKg, 1e-9)
	assert.InDelta(t, 45.3592*0.8, rec.DailyProtein, 1e-9)
}

func TestRecommend_Errors(t *testing.T) {
	_, err := Recommend(models.WeightInput{Value: 70, Unit: "stone"}, models.Athlete, models.Maintenance)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = Recommend(models.WeightInput{Value: 0, Unit: models.Kilograms}, models.Athlete, models.Maintenance)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
