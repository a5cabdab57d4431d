package api

import (
	"context"
	"net/http"
)

// DietPlanBody is the backend's diet plan payload. The backend calls the
// targets totalCalories/proteinGrams; the draft calls them
// targetCalories/targetProtein. The translation happens here and nowhere
// else.
type DietPlanBody struct {
	ClientID      string `json:"clientId"`
	Name          string `json:"name"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate,omitempty"`
	TotalCalories int    `json:"totalCalories"`
	ProteinGrams  int    `json:"proteinGrams"`
	CarbsGrams    int    `json:"carbsGrams"`
	FatGrams      int    `json:"fatGrams"`
}

// MealBody is the backend's meal payload.
type MealBody struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// MealItemBody is the backend's meal item payload ("items" is the backend
// name for a meal's foods, "assignedQuantity" for quantityGrams).
type MealItemBody struct {
	FoodID           string  `json:"foodId"`
	AssignedQuantity float64 `json:"assignedQuantity"`
	Unit             string  `json:"unit"`
}

// CreateDietPlan creates a plan and returns its backend-issued ID.
func (c *Client) CreateDietPlan(ctx context.Context, body DietPlanBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/diet-plans", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateDietPlan updates an existing plan.
func (c *Client) UpdateDietPlan(ctx context.Context, id string, body DietPlanBody) error {
	return c.do(ctx, http.MethodPut, "/diet-plans/"+id, body, nil)
}

// CreateMeal creates a meal under a plan and returns its ID.
func (c *Client) CreateMeal(ctx context.Context, planID string, body MealBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/diet-plans/"+planID+"/meals", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateMeal updates an existing meal.
func (c *Client) UpdateMeal(ctx context.Context, id string, body MealBody) error {
	return c.do(ctx, http.MethodPut, "/meals/"+id, body, nil)
}

// CreateMealItem creates a food item under a meal and returns its ID.
func (c *Client) CreateMealItem(ctx context.Context, mealID string, body MealItemBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/meals/"+mealID+"/items", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateMealItem updates an existing meal item.
func (c *Client) UpdateMealItem(ctx context.Context, id string, body MealItemBody) error {
	return c.do(ctx, http.MethodPut, "/meal-items/"+id, body, nil)
}
