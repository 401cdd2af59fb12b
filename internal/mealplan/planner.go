// internal/mealplan/planner.go
package mealplan

import (
	"fmt"
	"math/rand/v2"

	"health-calc/internal/foods"
	"health-calc/internal/models"
	"health-calc/internal/protein"
)

const (
	MinMealsPerDay = 3
	MaxMealsPerDay = 6

	// pruning only kicks in above this many candidates
	varietyFloor    = 8
	maxPruned       = 3
	maxServingsEach = 3
)

// Distribution controls where foods past the last full chunk end up.
type Distribution string

const (
	// DistributeRoundRobin deals trailing foods into the existing meals.
	DistributeRoundRobin Distribution = "round_robin"
	// DistributeTruncate leaves trailing foods out of every meal. They still
	// count toward the plan totals.
	DistributeTruncate Distribution = "truncate"
)

type Planner struct {
	table        *foods.Table
	rng          *rand.Rand
	distribution Distribution
}

type Option func(*Planner)

func WithDistribution(d Distribution) Option {
	return func(p *Planner) {
		p.distribution = d
	}
}

// NewPlanner builds a planner drawing from table with the given random
// source. The planner is not safe for concurrent use because rng is not.
func NewPlanner(table *foods.Table, rng *rand.Rand, opts ...Option) *Planner {
	p := &Planner{
		table:        table,
		rng:          rng,
		distribution: DistributeRoundRobin,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate allocates foods toward the request's protein target and spreads
// them over the requested number of meals.
func (p *Planner) Generate(req models.MealPlanRequest) (*models.MealPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if p.distribution != DistributeRoundRobin && p.distribution != DistributeTruncate {
		return nil, fmt.Errorf("%w: unknown distribution %q", models.ErrInvalidInput, p.distribution)
	}

	target := protein.PlannerTarget(req.WeightKg)
	candidates := p.prune(p.table.Filter(req.DietPreference))
	allocated := p.allocate(candidates, target)

	plan := &models.MealPlan{
		DietPreference: req.DietPreference,
		TargetProtein:  target,
		Foods:          allocated,
	}
	for _, f := range allocated {
		plan.TotalProtein += f.ProteinContributed
		plan.TotalCalories += f.CaloriesContributed
	}
	plan.Meals = distribute(allocated, req.MealsPerDay, p.distribution)
	return plan, nil
}

func validateRequest(req models.MealPlanRequest) error {
	if req.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %v", models.ErrInvalidInput, req.WeightKg)
	}
	if req.MealsPerDay < MinMealsPerDay || req.MealsPerDay > MaxMealsPerDay {
		return fmt.Errorf("%w: meals per day must be between %d and %d, got %d",
			models.ErrInvalidInput, MinMealsPerDay, MaxMealsPerDay, req.MealsPerDay)
	}
	for _, d := range models.DietPreferences {
		if d == req.DietPreference {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown diet preference %q", models.ErrInvalidInput, req.DietPreference)
}

// prune drops a few random candidates when there are enough left to keep
// the plan varied between runs.
func (p *Planner) prune(candidates []models.FoodItem) []models.FoodItem {
	if len(candidates) <= varietyFloor {
		return candidates
	}
	k := min(maxPruned, len(candidates)-varietyFloor)
	drop := make(map[int]bool, k)
	for _, idx := range p.rng.Perm(len(candidates))[:k] {
		drop[idx] = true
	}
	kept := make([]models.FoodItem, 0, len(candidates)-k)
	for i, c := range candidates {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	return kept
}

func (p *Planner) allocate(candidates []models.FoodItem, target float64) []models.AllocatedFood {
	pool := append([]models.FoodItem(nil), candidates...)
	allocated := []models.AllocatedFood{}
	remaining := target

	for remaining > 0 && len(pool) > 0 {
		idx := p.rng.IntN(len(pool))
		food := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		maxServings := min(maxServingsEach, int(remaining/food.ProteinPerServing)+1)
		if maxServings < 1 {
			continue
		}
		servings := 1 + p.rng.IntN(maxServings)
		got := food.ProteinPerServing * float64(servings)
		allocated = append(allocated, models.AllocatedFood{
			Food:                food,
			Servings:            servings,
			ProteinContributed:  got,
			CaloriesContributed: food.CaloriesPerServing * float64(servings),
		})
		remaining -= got
	}
	return allocated
}

// distribute chunks foods into meals in order. Meals that would be empty
// are left out.
func distribute(allocated []models.AllocatedFood, mealsPerDay int, mode Distribution) []models.Meal {
	meals := []models.Meal{}
	n := len(allocated)
	chunk := max(1, n/mealsPerDay)

	for i := 0; i < mealsPerDay; i++ {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		meals = append(meals, models.Meal{
			Label: fmt.Sprintf("Meal %d", i+1),
			Foods: append([]models.AllocatedFood(nil), allocated[start:end]...),
		})
	}

	if mode == DistributeRoundRobin && len(meals) > 0 {
		for j, f := range allocated[min(chunk*mealsPerDay, n):] {
			m := &meals[j%len(meals)]
			m.Foods = append(m.Foods, f)
		}
	}

	for i := range meals {
		for _, f := range meals[i].Foods {
			meals[i].ProteinSubtotal += f.ProteinContributed
			meals[i].CaloriesSubtotal += f.CaloriesContributed
		}
	}
	return meals
}

// RandomDiet picks a diet preference for the "surprise me" plan.
func RandomDiet(rng *rand.Rand) models.DietPreference {
	return models.DietPreferences[rng.IntN(len(models.DietPreferences))]
}

// NewRand returns a generator whose sequence is fixed by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
