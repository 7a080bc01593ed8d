// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

// IngredientResponse represents a single ingredient in HTTP responses.
type IngredientResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IngredientListResponse represents a list of ingredients in HTTP responses.
type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	Count       int                  `json:"count"`
}

// ToIngredientResponse converts a domain Ingredient to an HTTP response DTO.
func ToIngredientResponse(i *ingredient.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Unit:      i.Unit,
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
		UpdatedAt: i.UpdatedAt.Format(time.RFC3339),
	}
}

// ToIngredientListResponse converts a slice of domain Ingredients to an
// HTTP list response DTO.
func ToIngredientListResponse(items []ingredient.Ingredient) IngredientListResponse {
	out := make([]IngredientResponse, len(items))
	for i := range items {
		out[i] = ToIngredientResponse(&items[i])
	}
	return IngredientListResponse{
		Ingredients: out,
		Count:       len(out),
	}
}

// RecipeIngredientResponse is one ingredient of a recipe together with the
// quantity the recipe uses.
type RecipeIngredientResponse struct {
	IngredientResponse
	Quantity float64 `json:"quantity"`
}

// RecipeResponse represents a single recipe in HTTP responses.
type RecipeResponse struct {
	ID              int64                      `json:"id"`
	Name            string                     `json:"name"`
	Description     string                     `json:"description"`
	CreatedBy       string                     `json:"created_by"`
	CreatedAt       string                     `json:"created_at"`
	UpdatedAt       string                     `json:"updated_at"`
	Ingredients     []RecipeIngredientResponse `json:"ingredients"`
	IngredientCount int                        `json:"ingredient_count"`
}

// RecipeListResponse represents a list of recipes in HTTP responses.
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
	Count   int              `json:"count"`
}

// ToRecipeResponse converts a domain Recipe to an HTTP response DTO.
// Ingredients is always a JSON array, empty when the recipe has none.
func ToRecipeResponse(r *recipe.Recipe) RecipeResponse {
	items := make([]RecipeIngredientResponse, 0, len(r.Ingredients))
	for i := range r.Ingredients {
		a := &r.Ingredients[i]
		item := RecipeIngredientResponse{Quantity: a.Quantity}
		if a.Ingredient != nil {
			item.IngredientResponse = ToIngredientResponse(a.Ingredient)
		} else {
			item.ID = a.IngredientID
		}
		items = append(items, item)
	}

	return RecipeResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
		Ingredients:     items,
		IngredientCount: r.IngredientCount,
	}
}

// ToRecipeListResponse converts a slice of domain Recipes to an HTTP list
// response DTO.
func ToRecipeListResponse(recipes []recipe.Recipe) RecipeListResponse {
	out := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		out[i] = ToRecipeResponse(&recipes[i])
	}
	return RecipeListResponse{
		Recipes: out,
		Count:   len(out),
	}
}

// AssociationResponse represents a recipe/ingredient association. Recipe and
// Ingredient carry ids.
type AssociationResponse struct {
	ID         int64   `json:"id"`
	Recipe     int64   `json:"recipe"`
	Ingredient int64   `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ToAssociationResponse converts a domain Association to an HTTP response DTO.
func ToAssociationResponse(a *recipe.Association) AssociationResponse {
	return AssociationResponse{
		ID:         a.ID,
		Recipe:     a.RecipeID,
		Ingredient: a.IngredientID,
		Quantity:   a.Quantity,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

// StatusResponse is a short acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                    `json:"status"`
	Checks map[string]CheckResponse `json:"checks"`
}

// CheckResponse reports one dependency. Error is set only when Status is
// "error".
type CheckResponse struct {
	Status     string  `json:"status"`
	DurationMS float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}
