// internal/storage/catalog.go
package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"health-calc/internal/foods"
	"health-calc/internal/models"
)

type catalogFile struct {
	Foods []models.FoodItem `yaml:"foods"`
}

// LoadCatalogYAML reads a food list of the form
//
//	foods:
//	  - name: Tofu
//	    protein: 8
//	    calories: 76
//	    category: plant
//	    serving: 100g
func LoadCatalogYAML(path string) ([]models.FoodItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Foods))
	for i, item := range file.Foods {
		if err := checkFood(item); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		if seen[item.Name] {
			return nil, fmt.Errorf("catalog entry %d: %w: duplicate food %q", i+1, models.ErrInvalidInput, item.Name)
		}
		seen[item.Name] = true
	}
	return file.Foods, nil
}

func checkFood(item models.FoodItem) error {
	switch {
	case item.Name == "":
		return fmt.Errorf("%w: food name is required", models.ErrInvalidInput)
	case item.ProteinPerServing <= 0:
		return fmt.Errorf("%w: %s: protein must be positive", models.ErrInvalidInput, item.Name)
	case item.CaloriesPerServing <= 0:
		return fmt.Errorf("%w: %s: calories must be positive", models.ErrInvalidInput, item.Name)
	}
	switch item.Category {
	case models.CategoryAnimal, models.CategoryPlant, models.CategoryVegetarian:
		return nil
	}
	return fmt.Errorf("%w: %s: unknown category %q", models.ErrInvalidInput, item.Name, item.Category)
}

// OpenCatalog opens the catalog database and returns its contents as an
// immutable table. When catalogPath is set the file replaces whatever the
// database held; otherwise an empty database gets the built-in foods.
func OpenCatalog(dbPath, catalogPath string) (*foods.Table, error) {
	stor, err := NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	defer stor.Close()

	if catalogPath != "" {
		items, err := LoadCatalogYAML(catalogPath)
		if err != nil {
			return nil, err
		}
		if err := stor.ReplaceFoods(items); err != nil {
			return nil, err
		}
	} else if _, err := stor.SeedFoods(foods.Default().Items()); err != nil {
		return nil, err
	}

	items, err := stor.LoadFoods()
	if err != nil {
		return nil, err
	}
	return foods.NewTable(items), nil
}
