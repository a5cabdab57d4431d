package persist

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk/internal/api"
	"github.com/gymdesk/gymdesk/internal/nutrition"
)

// DietPlanAPI is the slice of the backend client the diet persister needs.
type DietPlanAPI interface {
	CreateDietPlan(ctx context.Context, body api.DietPlanBody) (string, error)
	UpdateDietPlan(ctx context.Context, id string, body api.DietPlanBody) error
	CreateMeal(ctx context.Context, planID string, body api.MealBody) (string, error)
	UpdateMeal(ctx context.Context, id string, body api.MealBody) error
	CreateMealItem(ctx context.Context, mealID string, body api.MealItemBody) (string, error)
	UpdateMealItem(ctx context.Context, id string, body api.MealItemBody) error
}

// DietPersister walks a diet plan draft through the sequential save. Not
// safe for concurrent use; one save runs at a time, matching the single
// draft being edited.
type DietPersister struct {
	api      DietPlanAPI
	notifier Notifier
	state    State
}

// NewDietPersister creates a diet plan persister.
func NewDietPersister(apiClient DietPlanAPI, notifier Notifier) *DietPersister {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &DietPersister{api: apiClient, notifier: notifier, state: StateIdle}
}

// State returns where the last save got to.
func (p *DietPersister) State() State {
	return p.state
}

func planBody(plan *nutrition.DietPlanDraft) api.DietPlanBody {
	return api.DietPlanBody{
		ClientID:      plan.ClientID,
		Name:          plan.Name,
		StartDate:     plan.StartDate,
		EndDate:       plan.EndDate,
		TotalCalories: plan.TargetCalories,
		ProteinGrams:  plan.TargetProtein,
		CarbsGrams:    plan.TargetCarbs,
		FatGrams:      plan.TargetFat,
	}
}

func mealBody(meal nutrition.MealDraft) api.MealBody {
	return api.MealBody{Name: meal.Name, Time: meal.Time}
}

func mealItemBody(entry nutrition.MealFoodEntry) api.MealItemBody {
	return api.MealItemBody{
		FoodID:           entry.FoodID,
		AssignedQuantity: entry.QuantityGrams,
		Unit:             entry.Unit,
	}
}

// Save persists the draft: plan first, then each meal in order, then each
// meal's foods in order, every call awaited before the next. Backend IDs
// are stamped onto the draft as soon as they are issued, so a retry after
// a failure re-attempts the already-saved entities as updates instead of
// duplicate creates. On the first failure the remaining sequence is
// abandoned; nothing already persisted is rolled back.
//
// Callers run plan.Validate before invoking Save; a plan with zero meals
// is legal here and completes after the parent call.
func (p *DietPersister) Save(ctx context.Context, plan *nutrition.DietPlanDraft) error {
	p.state = StateSavingParent
	if plan.ID == "" {
		id, err := p.api.CreateDietPlan(ctx, planBody(plan))
		if err != nil {
			return p.fail(err)
		}
		plan.ID = id
	} else {
		if err := p.api.UpdateDietPlan(ctx, plan.ID, planBody(plan)); err != nil {
			return p.fail(err)
		}
	}

	for i := range plan.Meals {
		p.state = StateSavingChildren
		meal := &plan.Meals[i]
		if meal.ID == "" {
			id, err := p.api.CreateMeal(ctx, plan.ID, mealBody(*meal))
			if err != nil {
				return p.fail(err)
			}
			meal.ID = id
		} else {
			if err := p.api.UpdateMeal(ctx, meal.ID, mealBody(*meal)); err != nil {
				return p.fail(err)
			}
		}

		for j := range meal.Foods {
			p.state = StateSavingGrandchildren
			entry := &meal.Foods[j]
			if entry.ID == "" {
				id, err := p.api.CreateMealItem(ctx, meal.ID, mealItemBody(*entry))
				if err != nil {
					return p.fail(err)
				}
				entry.ID = id
			} else {
				if err := p.api.UpdateMealItem(ctx, entry.ID, mealItemBody(*entry)); err != nil {
					return p.fail(err)
				}
			}
		}
	}

	p.state = StateDone
	p.notifier.Success("Diet plan saved")
	return nil
}

func (p *DietPersister) fail(err error) error {
	p.state = StateFailed
	p.notifier.Error(userMessage(err))
	return fmt.Errorf("save diet plan: %w", err)
}
