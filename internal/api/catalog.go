package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gymdesk/gymdesk/internal/catalog"
)

// Raw backend payloads. Field-name quirks stay in this file: everything
// past this boundary works with the canonical catalog types.

type foodPayload struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
}

func (p foodPayload) normalize() catalog.Food {
	return catalog.Food{
		ID:              p.ID,
		Name:            p.Name,
		CaloriesPer100g: p.CaloriesPer100g,
		ProteinPer100g:  p.ProteinPer100g,
		CarbsPer100g:    p.CarbsPer100g,
		FatPer100g:      p.FatPer100g,
	}
}

type secondaryMusclePayload struct {
	MuscleName          string  `json:"muscleName"`
	ContributionPercent float64 `json:"contributionPercent"`
}

type exercisePayload struct {
	ID                               string                   `json:"id"`
	Name                             string                   `json:"name"`
	PrimaryMuscleName                string                   `json:"primaryMuscleName"`
	PrimaryMuscleContributionPercent float64                  `json:"primaryMuscleContributionPercent"`
	SecondaryMuscles                 []secondaryMusclePayload `json:"secondaryMuscles"`
}

func (p exercisePayload) normalize() catalog.Exercise {
	ex := catalog.Exercise{
		ID:                               p.ID,
		Name:                             p.Name,
		PrimaryMuscleName:                p.PrimaryMuscleName,
		PrimaryMuscleContributionPercent: p.PrimaryMuscleContributionPercent,
	}
	for _, sec := range p.SecondaryMuscles {
		ex.SecondaryMuscles = append(ex.SecondaryMuscles, catalog.SecondaryMuscle{
			MuscleName:          sec.MuscleName,
			ContributionPercent: sec.ContributionPercent,
		})
	}
	return ex
}

// clientPayload tolerates the three spellings the backend has used for a
// member's display name.
type clientPayload struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	FullName   string `json:"fullName"`
	Profile    struct {
		FullName string `json:"fullName"`
	} `json:"profile"`
}

func (p clientPayload) normalize() catalog.Client {
	name := strings.TrimSpace(p.ClientName)
	if name == "" {
		name = strings.TrimSpace(p.FullName)
	}
	if name == "" {
		name = strings.TrimSpace(p.Profile.FullName)
	}
	return catalog.Client{ID: p.ID, FullName: name}
}

// ListFoods fetches the food reference data.
func (c *Client) ListFoods(ctx context.Context) ([]catalog.Food, error) {
	var payloads []foodPayload
	if err := c.do(ctx, http.MethodGet, "/foods", nil, &payloads); err != nil {
		return nil, err
	}
	foods := make([]catalog.Food, len(payloads))
	for i, p := range payloads {
		foods[i] = p.normalize()
	}
	return foods, nil
}

// ListExercises fetches the exercise reference data.
func (c *Client) ListExercises(ctx context.Context) ([]catalog.Exercise, error) {
	var payloads []exercisePayload
	if err := c.do(ctx, http.MethodGet, "/exercises", nil, &payloads); err != nil {
		return nil, err
	}
	exercises := make([]catalog.Exercise, len(payloads))
	for i, p := range payloads {
		exercises[i] = p.normalize()
	}
	return exercises, nil
}

// ListClients fetches the member roster visible to the current user.
func (c *Client) ListClients(ctx context.Context) ([]catalog.Client, error) {
	var payloads []clientPayload
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &payloads); err != nil {
		return nil, err
	}
	clients := make([]catalog.Client, len(payloads))
	for i, p := range payloads {
		clients[i] = p.normalize()
	}
	return clients, nil
}
