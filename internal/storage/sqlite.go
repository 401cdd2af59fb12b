// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"health-calc/internal/models"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// ":memory:" is per connection; a single connection keeps one catalog.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS foods (
        name TEXT PRIMARY KEY,
        position INTEGER NOT NULL,
        protein REAL NOT NULL CHECK (protein > 0),
        calories REAL NOT NULL CHECK (calories > 0),
        category TEXT NOT NULL CHECK (category IN ('animal', 'plant', 'vegetarian')),
        serving TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_foods_position ON foods(position);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedFoods inserts items only when the catalog is empty, so reopening an
// existing database keeps whatever it already holds.
func (s *SQLiteStorage) SeedFoods(items []models.FoodItem) (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM foods`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count foods: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := s.ReplaceFoods(items); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceFoods swaps the whole catalog for items in one transaction.
func (s *SQLiteStorage) ReplaceFoods(items []models.FoodItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM foods`); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}

	query := `
        INSERT INTO foods (name, position, protein, calories, category, serving)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	for i, item := range items {
		_, err = tx.Exec(query,
			item.Name, i, item.ProteinPerServing, item.CaloriesPerServing,
			string(item.Category), item.ServingDescription)
		if err != nil {
			return fmt.Errorf("failed to insert food %q: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) LoadFoods() ([]models.FoodItem, error) {
	query := `
        SELECT name, protein, calories, category, serving
        FROM foods
        ORDER BY position
    `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	var items []models.FoodItem
	for rows.Next() {
		item := models.FoodItem{}
		var categoryStr string

		err := rows.Scan(
			&item.Name, &item.ProteinPerServing, &item.CaloriesPerServing,
			&categoryStr, &item.ServingDescription)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}

		item.Category = models.Category(categoryStr)
		items = append(items, item)
	}

	return items, rows.Err()
}
