package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-calc/internal/foods"
	"health-calc/internal/models"
)

func newTestStorage(t *testing.T) (*SQLiteStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.db")
	stor, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { stor.Close() })
	return stor, path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedFoods(t *testing.T) {
	stor, _ := newTestStorage(t)
	defaults := foods.Default().Items()

	seeded, err := stor.SeedFoods(defaults)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = stor.SeedFoods(defaults)
	require.NoError(t, err)
	assert.False(t, seeded)

	loaded, err := stor.LoadFoods()
	require.NoError(t, err)
	assert.Equal(t, defaults, loaded)
}

func TestReplaceFoods(t *testing.T) {
	stor, _ := newTestStorage(t)
	_, err := stor.SeedFoods(foods.Default().Items())
	require.NoError(t, err)

	replacement := []models.FoodItem{
		{Name: "Tempeh", ProteinPerServing: 19, CaloriesPerServing: 193, Category: models.CategoryPlant, ServingDescription: "100g"},
		{Name: "Edamame", ProteinPerServing: 11, CaloriesPerServing: 121, Category: models.CategoryPlant, ServingDescription: "100g"},
	}
	require.NoError(t, stor.ReplaceFoods(replacement))

	loaded, err := stor.LoadFoods()
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)
}

func TestReplaceFoods_RollsBackOnBadRow(t *testing.T) {
	stor, _ := newTestStorage(t)
	_, err := stor.SeedFoods(foods.Default().Items())
	require.NoError(t, err)

	err = stor.ReplaceFoods([]models.FoodItem{
		{Name: "Tempeh", ProteinPerServing: 19, CaloriesPerServing: 193, Category: models.CategoryPlant},
		{Name: "Tempeh", ProteinPerServing: 19, CaloriesPerServing: 193, Category: models.CategoryPlant},
	})
	require.Error(t, err)

	loaded, err := stor.LoadFoods()
	require.NoError(t, err)
	assert.Len(t, loaded, foods.Default().Len())
}

func TestLoadCatalogYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
foods:
  - name: Tempeh
    protein: 19
    calories: 193
    category: plant
    serving: 100g
  - name: Skyr
    protein: 11
    calories: 63
    category: vegetarian
    serving: 100g
`)

	items, err := LoadCatalogYAML(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.FoodItem{
		Name: "Tempeh", ProteinPerServing: 19, CaloriesPerServing: 193,
		Category: models.CategoryPlant, ServingDescription: "100g",
	}, items[0])
}

func TestLoadCatalogYAML_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate", "foods:\n  - {name: A, protein: 1, calories: 1, category: plant}\n  - {name: A, protein: 2, calories: 2, category: plant}\n"},
		{"bad category", "foods:\n  - {name: A, protein: 1, calories: 1, category: fungus}\n"},
		{"zero protein", "foods:\n  - {name: A, protein: 0, calories: 1, category: plant}\n"},
		{"missing name", "foods:\n  - {protein: 1, calories: 1, category: plant}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogYAML(writeFile(t, "catalog.yaml", tt.content))
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}

	_, err := LoadCatalogYAML(writeFile(t, "catalog.yaml", "foods:\n  - {name: A, fat: 3}\n"))
	assert.Error(t, err)
}

func TestOpenCatalog(t *testing.T) {
	table, err := OpenCatalog(":memory:", "")
	require.NoError(t, err)
	assert.Equal(t, foods.Default().Items(), table.Items())

	dbPath := filepath.Join(t.TempDir(), "foods.db")
	catalog := writeFile(t, "catalog.yaml", "foods:\n  - {name: Seitan, protein: 25, calories: 370, category: plant, serving: 100g}\n")
	table, err = OpenCatalog(dbPath, catalog)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	// reopening without a catalog keeps the imported foods
	table, err = OpenCatalog(dbPath, "")
	require.NoError(t, err)
	_, ok := table.Lookup("Seitan")
	assert.True(t, ok)
	assert.Equal(t, 1, table.Len())
}
