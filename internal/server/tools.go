// internal/server/tools.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/go-playground/validator/v10"

	"health-calc/internal/caffeine"
	"health-calc/internal/mealplan"
	"health-calc/internal/models"
	"health-calc/internal/protein"
)

const defaultMealsPerDay = 4

type CaffeineImpactParams struct {
	Amount float64 `json:"amount" validate:"gt=0" description:"Caffeine amount"`
	Unit   string  `json:"unit,omitempty" validate:"omitempty,oneof=grams milligrams" description:"grams (default) or milligrams"`
}

type ProteinParams struct {
	Weight        float64 `json:"weight" validate:"gt=0" description:"Body weight"`
	WeightUnit    string  `json:"weight_unit,omitempty" validate:"omitempty,oneof=kg lbs" description:"kg (default) or lbs"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=Sedentary 'Light Exercise' 'Moderate Exercise' 'Intense Exercise' Athlete"`
	Goal          string  `json:"goal" validate:"required,oneof=Maintenance 'Muscle Building' 'Fat Loss'"`
}

type MealPlanParams struct {
	Weight         float64 `json:"weight" validate:"gt=0" description:"Body weight"`
	WeightUnit     string  `json:"weight_unit,omitempty" validate:"omitempty,oneof=kg lbs" description:"kg (default) or lbs"`
	DietPreference string  `json:"diet_preference,omitempty" validate:"omitempty,oneof=Mixed 'Animal Based' 'Plant Based' Vegetarian"`
	MealsPerDay    int     `json:"meals_per_day,omitempty" validate:"omitempty,min=3,max=6" description:"3 to 6, defaults to 4"`
	Seed           *uint64 `json:"seed,omitempty" description:"Random seed for a reproducible plan"`
	Distribution   string  `json:"distribution,omitempty" validate:"omitempty,oneof=round_robin truncate"`
}

type ListFoodsParams struct {
	DietPreference string `json:"diet_preference,omitempty" validate:"omitempty,oneof=Mixed 'Animal Based' 'Plant Based' Vegetarian"`
}

type MealPlanResponse struct {
	Weight models.WeightInput    `json:"weight"`
	Seed   uint64                `json:"seed"`
	Plan   *models.MealPlan      `json:"plan"`
	Chart  mealplan.StackedChart `json:"chart"`
}

type ListFoodsResponse struct {
	DietPreference models.DietPreference `json:"diet_preference"`
	Foods          []models.FoodItem     `json:"foods"`
}

// extractParams decodes the request arguments into target and checks its
// validation tags.
func (s *CalcServer) extractParams(req *protocol.CallToolRequest, target interface{}) error {
	// Convert the Arguments map to JSON bytes, then unmarshal to target
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	if err := s.validate.Struct(target); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg := fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag())
			if fe.Param() != "" {
				msg += "=" + fe.Param()
			}
			msgs = append(msgs, msg)
		}
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, strings.Join(msgs, "; "))
	}

	return nil
}

func weightOf(value float64, unit string) models.WeightInput {
	w := models.WeightInput{Value: value, Unit: models.WeightUnit(unit)}
	if w.Unit == "" {
		w.Unit = models.Kilograms
	}
	return w
}

// handleCaffeineImpact classifies a dose and charts its decay
func (s *CalcServer) handleCaffeineImpact(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params CaffeineImpactParams
	if err := s.extractParams(req, &params); err != nil {
		return nil, err
	}

	dose := models.DoseInput{Amount: params.Amount, Unit: models.DoseUnit(params.Unit)}
	if dose.Unit == "" {
		dose.Unit = models.Grams
	}

	assessment, err := caffeine.Assess(dose)
	if err != nil {
		return nil, err
	}
	return s.createJSONResponse(assessment)
}

func (s *CalcServer) handleProteinRequirement(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ProteinParams
	if err := s.extractParams(req, &params); err != nil {
		return nil, err
	}

	rec, err := protein.Recommend(
		weightOf(params.Weight, params.WeightUnit),
		models.ActivityLevel(params.ActivityLevel),
		models.Goal(params.Goal),
	)
	if err != nil {
		return nil, err
	}
	return s.createJSONResponse(rec)
}

func (s *CalcServer) handleGenerateMealPlan(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.mealPlan(req, false)
}

// handleRandomMealPlan ignores any diet preference and draws one
func (s *CalcServer) handleRandomMealPlan(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.mealPlan(req, true)
}

func (s *CalcServer) mealPlan(req *protocol.CallToolRequest, randomDiet bool) (*protocol.CallToolResult, error) {
	var params MealPlanParams
	if err := s.extractParams(req, &params); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if params.Seed != nil {
		seed = *params.Seed
	}
	rng := mealplan.NewRand(seed)

	diet := models.DietPreference(params.DietPreference)
	if randomDiet {
		diet = mealplan.RandomDiet(rng)
	} else if diet == "" {
		diet = models.DietMixed
	}

	meals := params.MealsPerDay
	if meals == 0 {
		meals = defaultMealsPerDay
	}

	var opts []mealplan.Option
	if params.Distribution != "" {
		opts = append(opts, mealplan.WithDistribution(mealplan.Distribution(params.Distribution)))
	}

	weight := weightOf(params.Weight, params.WeightUnit)
	plan, err := mealplan.NewPlanner(s.table, rng, opts...).Generate(models.MealPlanRequest{
		WeightKg:       weight.Kilograms(),
		DietPreference: diet,
		MealsPerDay:    meals,
	})
	if err != nil {
		return nil, err
	}

	return s.createJSONResponse(MealPlanResponse{
		Weight: weight,
		Seed:   seed,
		Plan:   plan,
		Chart:  mealplan.Chart(plan),
	})
}

func (s *CalcServer) handleListFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ListFoodsParams
	if err := s.extractParams(req, &params); err != nil {
		return nil, err
	}

	diet := models.DietPreference(params.DietPreference)
	if diet == "" {
		diet = models.DietMixed
	}
	return s.createJSONResponse(ListFoodsResponse{
		DietPreference: diet,
		Foods:          s.table.Filter(diet),
	})
}

func (s *CalcServer) registerTools() error {
	s.tools = map[string]toolHandler{
		"caffeine_impact":     s.handleCaffeineImpact,
		"protein_requirement": s.handleProteinRequirement,
		"generate_meal_plan":  s.handleGenerateMealPlan,
		"random_meal_plan":    s.handleRandomMealPlan,
		"list_foods":          s.handleListFoods,
	}

	for name, handler := range s.tools {
		if handler == nil {
			return fmt.Errorf("tool %s has no handler", name)
		}
	}
	return nil
}
