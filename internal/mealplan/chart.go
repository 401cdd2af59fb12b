// internal/mealplan/chart.go
package mealplan

import "health-calc/internal/models"

type Layer struct {
	Food   string    `json:"food"`
	Values []float64 `json:"values"`
}

// StackedChart holds protein per meal, one layer per food.
type StackedChart struct {
	Title   string   `json:"title"`
	XLabel  string   `json:"x_label"`
	YLabel  string   `json:"y_label"`
	Meals   []string `json:"meals"`
	Layers  []Layer  `json:"layers"`
	Message string   `json:"message,omitempty"`
}

func Chart(plan *models.MealPlan) StackedChart {
	c := StackedChart{
		Title:  "Protein Distribution Across Meals",
		XLabel: "Meals",
		YLabel: "Protein (g)",
		Meals:  []string{},
		Layers: []Layer{},
	}
	if plan == nil || len(plan.Meals) == 0 {
		c.Message = "No meal data available"
		return c
	}

	index := map[string]int{}
	for i, meal := range plan.Meals {
		c.Meals = append(c.Meals, meal.Label)
		for _, f := range meal.Foods {
			li, ok := index[f.Food.Name]
			if !ok {
				li = len(c.Layers)
				index[f.Food.Name] = li
				c.Layers = append(c.Layers, Layer{Food: f.Food.Name, Values: make([]float64, len(plan.Meals))})
			}
			c.Layers[li].Values[i] = f.ProteinContributed
		}
	}
	return c
}
