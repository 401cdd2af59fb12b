// internal/foods/default.go
package foods

import "health-calc/internal/models"

var defaultItems = []models.FoodItem{
	{Name: "Chicken Breast", ProteinPerServing: 31, CaloriesPerServing: 165, Category: models.CategoryAnimal, ServingDescription: "100g"},
	{Name: "Eggs", ProteinPerServing: 13, CaloriesPerServing: 155, Category: models.CategoryAnimal, ServingDescription: "2 large eggs"},
	{Name: "Salmon", ProteinPerServing: 25, CaloriesPerServing: 206, Category: models.CategoryAnimal, ServingDescription: "100g"},
	{Name: "Greek Yogurt", ProteinPerServing: 10, CaloriesPerServing: 59, Category: models.CategoryAnimal, ServingDescription: "100g"},
	{Name: "Beef Steak", ProteinPerServing: 26, CaloriesPerServing: 271, Category: models.CategoryAnimal, ServingDescription: "100g"},
	{Name: "Tuna", ProteinPerServing: 30, CaloriesPerServing: 132, Category: models.CategoryAnimal, ServingDescription: "100g"},
	{Name: "Whey Protein", ProteinPerServing: 24, CaloriesPerServing: 120, Category: models.CategoryAnimal, ServingDescription: "1 scoop"},

	{Name: "Tofu", ProteinPerServing: 8, CaloriesPerServing: 76, Category: models.CategoryPlant, ServingDescription: "100g"},
	{Name: "Lentils", ProteinPerServing: 9, CaloriesPerServing: 116, Category: models.CategoryPlant, ServingDescription: "100g cooked"},
	{Name: "Chickpeas", ProteinPerServing: 9, CaloriesPerServing: 139, Category: models.CategoryPlant, ServingDescription: "100g cooked"},
	{Name: "Kidney Beans", ProteinPerServing: 9, CaloriesPerServing: 127, Category: models.CategoryPlant, ServingDescription: "100g cooked"},
	{Name: "Almonds", ProteinPerServing: 21, CaloriesPerServing: 579, Category: models.CategoryPlant, ServingDescription: "100g"},
	{Name: "Peanut Butter", ProteinPerServing: 25, CaloriesPerServing: 588, Category: models.CategoryPlant, ServingDescription: "100g"},
	{Name: "Quinoa", ProteinPerServing: 4, CaloriesPerServing: 120, Category: models.CategoryPlant, ServingDescription: "100g cooked"},

	{Name: "Paneer", ProteinPerServing: 18, CaloriesPerServing: 265, Category: models.CategoryVegetarian, ServingDescription: "100g"},
	{Name: "Milk", ProteinPerServing: 3, CaloriesPerServing: 42, Category: models.CategoryVegetarian, ServingDescription: "100ml"},
	{Name: "Cottage Cheese", ProteinPerServing: 11, CaloriesPerServing: 98, Category: models.CategoryVegetarian, ServingDescription: "100g"},
	{Name: "Cheese", ProteinPerServing: 25, CaloriesPerServing: 402, Category: models.CategoryVegetarian, ServingDescription: "100g"},
}
