// internal/models/protein.go
package models

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary"
	LightExercise    ActivityLevel = "Light Exercise"
	ModerateExercise ActivityLevel = "Moderate Exercise"
	IntenseExercise  ActivityLevel = "Intense Exercise"
	Athlete          ActivityLevel = "Athlete"
)

type Goal string

const (
	Maintenance    Goal = "Maintenance"
	MuscleBuilding Goal = "Muscle Building"
	FatLoss        Goal = "Fat Loss"
)

type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

// KgPerLb converts pounds to kilograms.
const KgPerLb = 0.453592

type WeightInput struct {
	Value float64    `json:"weight"`
	Unit  WeightUnit `json:"weight_unit"`
}

// Kilograms returns the weight in kg.
func (w WeightInput) Kilograms() float64 {
	if w.Unit == Pounds {
		return w.Value * KgPerLb
	}
	return w.Value
}
