// internal/foods/table.go
package foods

import (
	"health-calc/internal/models"
)

// Table is a read-only, ordered food collection. Filtering returns new
// slices and never touches the backing data.
type Table struct {
	items []models.FoodItem
}

// NewTable copies items into a Table.
func NewTable(items []models.FoodItem) *Table {
	cp := make([]models.FoodItem, len(items))
	copy(cp, items)
	return &Table{items: cp}
}

// Default returns the built-in table.
func Default() *Table {
	return NewTable(defaultItems)
}

func (t *Table) Len() int {
	return len(t.items)
}

// Items returns a copy of every food in table order.
func (t *Table) Items() []models.FoodItem {
	return t.Filter(models.DietMixed)
}

// Lookup finds a food by name.
func (t *Table) Lookup(name string) (models.FoodItem, bool) {
	for _, item := range t.items {
		if item.Name == name {
			return item, true
		}
	}
	return models.FoodItem{}, false
}

// Filter returns the foods a diet preference allows, in table order.
// An unknown preference allows nothing.
func (t *Table) Filter(pref models.DietPreference) []models.FoodItem {
	allowed := Categories(pref)
	out := make([]models.FoodItem, 0, len(t.items))
	for _, item := range t.items {
		if allowed[item.Category] {
			out = append(out, item)
		}
	}
	return out
}

// Categories maps a diet preference to the food categories it admits.
func Categories(pref models.DietPreference) map[models.Category]bool {
	switch pref {
	case models.DietMixed:
		return map[models.Category]bool{
			models.CategoryAnimal:     true,
			models.CategoryPlant:      true,
			models.CategoryVegetarian: true,
		}
	case models.DietAnimalBased:
		return map[models.Category]bool{models.CategoryAnimal: true}
	case models.DietPlantBased:
		return map[models.Category]bool{models.CategoryPlant: true}
	case models.DietVegetarian:
		return map[models.Category]bool{models.CategoryVegetarian: true, models.CategoryPlant: true}
	}
	return map[models.Category]bool{}
}
