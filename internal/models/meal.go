// internal/models/meal.go
package models

// Category groups foods for diet filtering.
type Category string

const (
	CategoryAnimal     Category = "animal"
	CategoryPlant      Category = "plant"
	CategoryVegetarian Category = "vegetarian"
)

type FoodItem struct {
	Name               string   `json:"name" yaml:"name"`
	ProteinPerServing  float64  `json:"protein_per_serving" yaml:"protein"`
	CaloriesPerServing float64  `json:"calories_per_serving" yaml:"calories"`
	Category           Category `json:"category" yaml:"category"`
	ServingDescription string   `json:"serving" yaml:"serving"`
}

type DietPreference string

const (
	DietMixed       DietPreference = "Mixed"
	DietAnimalBased DietPreference = "Animal Based"
	DietPlantBased  DietPreference = "Plant Based"
	DietVegetarian  DietPreference = "Vegetarian"
)

// DietPreferences lists the preferences in display order.
var DietPreferences = []DietPreference{DietMixed, DietAnimalBased, DietPlantBased, DietVegetarian}

type MealPlanRequest struct {
	WeightKg       float64        `json:"weight_kg"`
	DietPreference DietPreference `json:"diet_preference"`
	MealsPerDay    int            `json:"meals_per_day"`
}

type AllocatedFood struct {
	Food                FoodItem `json:"food"`
	Servings            int      `json:"servings"`
	ProteinContributed  float64  `json:"protein"`
	CaloriesContributed float64  `json:"calories"`
}

type Meal struct {
	Label            string          `json:"name"`
	Foods            []AllocatedFood `json:"foods"`
	ProteinSubtotal  float64         `json:"protein"`
	CaloriesSubtotal float64         `json:"calories"`
}

type MealPlan struct {
	DietPreference DietPreference  `json:"diet_preference"`
	TargetProtein  float64         `json:"target_protein"`
	TotalProtein   float64         `json:"total_protein"`
	TotalCalories  float64         `json:"total_calories"`
	Meals          []Meal          `json:"meals"`
	Foods          []AllocatedFood `json:"foods"` // every allocation, in pick order
}
