package nutrition

import "fmt"

// MealFoodEntry is one food row inside a meal. ID is empty until the entry
// has been persisted.
type MealFoodEntry struct {
	ID            string  `json:"id,omitempty"`
	FoodID        string  `json:"foodId"`
	QuantityGrams float64 `json:"quantityGrams"`
	Unit          string  `json:"unit"`
}

// MealDraft is a client-side meal, possibly mixing persisted and
// unpersisted food entries.
type MealDraft struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name"`
	Time  string          `json:"time"`
	Foods []MealFoodEntry `json:"foods"`
}

// DietPlanDraft is the editable client-side diet plan. Targets are the
// coach-set goals; consumed totals are derived from the meals via the
// aggregator, never stored.
type DietPlanDraft struct {
	ID             string      `json:"id,omitempty"`
	ClientID       string      `json:"clientId"`
	Name           string      `json:"name"`
	StartDate      string      `json:"startDate"`
	EndDate        string      `json:"endDate,omitempty"`
	TargetCalories int         `json:"targetCalories"`
	TargetProtein  int         `json:"targetProtein"`
	TargetCarbs    int         `json:"targetCarbs"`
	TargetFat      int         `json:"targetFat"`
	Meals          []MealDraft `json:"meals"`
}

// Validate checks that the draft is ready to be saved. Failing validation
// blocks the save before any network call is made.
func (p *DietPlanDraft) Validate() error {
	if p.ClientID == "" {
		return fmt.Errorf("clientId is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.StartDate == "" {
		return fmt.Errorf("startDate is required")
	}
	if len(p.Meals) == 0 {
		return fmt.Errorf("plan must have at least one meal")
	}
	for i, meal := range p.Meals {
		if meal.Name == "" {
			return fmt.Errorf("meal[%d]: name is required", i)
		}
		for j, food := range meal.Foods {
			if food.FoodID == "" {
				return fmt.Errorf("meal[%d] food[%d]: foodId is required", i, j)
			}
			if food.QuantityGrams < 0 {
				return fmt.Errorf("meal[%d] food[%d]: quantity must be non-negative", i, j)
			}
		}
	}
	return nil
}
