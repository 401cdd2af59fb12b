// internal/protein/recommend.go
package protein

import (
	"fmt"

	"health-calc/internal/models"
)

// MealNames are the fixed slots the daily protein is split across.
var MealNames = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

var palettes = map[models.Goal][]string{
	models.Maintenance:    {"#ff9999", "#66b3ff", "#99ff99", "#ffcc99"},
	models.MuscleBuilding: {"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4"},
	models.FatLoss:        {"#ff9ff3", "#f368e0", "#ff9f43", "#ee5253"},
}

type MealShare struct {
	Meal    string  `json:"meal"`
	Protein float64 `json:"protein"`
}

type PieChart struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

type Recommendation struct {
	Weight       models.WeightInput   `json:"weight"`
	WeightKg     float64              `json:"weight_kg"`
	Activity     models.ActivityLevel `json:"activity_level"`
	Goal         models.Goal          `json:"goal"`
	ProteinPerKg float64              `json:"protein_per_kg"`
	DailyProtein float64              `json:"daily_protein"`
	PerMeal      float64              `json:"per_meal"`
	Distribution []MealShare          `json:"distribution"`
	Chart        PieChart             `json:"chart"`
}

// Recommend computes the daily requirement for a weight in either unit and
// splits it evenly over the day's meal slots.
func Recommend(w models.WeightInput, activity models.ActivityLevel, goal models.Goal) (*Recommendation, error) {
	if w.Unit != models.Kilograms && w.Unit != models.Pounds {
		return nil, fmt.Errorf("%w: unknown weight unit %q", models.ErrInvalidInput, w.Unit)
	}
	kg := w.Kilograms()
	daily, err := DailyRequirement(kg, activity, goal)
	if err != nil {
		return nil, err
	}
	rate, _ := RatePerKg(activity, goal)

	perMeal := daily / float64(len(MealNames))
	r := &Recommendation{
		Weight:       w,
		WeightKg:     kg,
		Activity:     activity,
		Goal:         goal,
		ProteinPerKg: rate,
		DailyProtein: daily,
		PerMeal:      perMeal,
	}
	values := make([]float64, 0, len(MealNames))
	for _, name := range MealNames {
		r.Distribution = append(r.Distribution, MealShare{Meal: name, Protein: perMeal})
		values = append(values, perMeal)
	}
	r.Chart = PieChart{
		Title:  fmt.Sprintf("Daily Protein Distribution: %.1fg total\n(%s)", daily, goal),
		Labels: append([]string(nil), MealNames...),
		Values: values,
		Colors: append([]string(nil), palettes[goal]...),
	}
	return r, nil
}
