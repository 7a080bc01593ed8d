package dto

import (
	"strings"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgMustPositive = "must be a positive integer"
)

// IngredientRequest is the JSON body for creating or fully replacing an ingredient.
type IngredientRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *IngredientRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Unit) == "" {
		fields["unit"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToIngredient maps the request to a new domain Ingredient.
func (r *IngredientRequest) ToIngredient() *ingredient.Ingredient {
	return &ingredient.Ingredient{Name: r.Name, Unit: r.Unit}
}

// ToPatch maps a full replacement onto a patch that sets every field.
func (r *IngredientRequest) ToPatch() ingredient.Patch {
	return ingredient.Patch{Name: &r.Name, Unit: &r.Unit}
}

// PatchIngredientRequest is the JSON body for a partial ingredient update.
// Nil means "do not change this field".
type PatchIngredientRequest struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *PatchIngredientRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Unit != nil && strings.TrimSpace(*r.Unit) == "" {
		fields["unit"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps the request to a domain patch.
func (r *PatchIngredientRequest) ToPatch() ingredient.Patch {
	return ingredient.Patch{Name: r.Name, Unit: r.Unit}
}

// RecipeRequest is the JSON body for creating or fully replacing a recipe.
// The owner is always the authenticated caller; the composition is managed
// through the add_ingredient and remove_ingredient actions.
type RecipeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (r *RecipeRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToRecipe maps the request to a new domain Recipe owned by createdBy.
func (r *RecipeRequest) ToRecipe(createdBy string) *recipe.Recipe {
	return &recipe.Recipe{Name: r.Name, Description: r.Description, CreatedBy: createdBy}
}

// ToPatch maps a full replacement onto a patch that leaves the composition alone.
func (r *RecipeRequest) ToPatch() recipe.Patch {
	return recipe.Patch{Name: &r.Name, Description: &r.Description}
}

// PatchRecipeRequest is the JSON body for a partial recipe update.
type PatchRecipeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *PatchRecipeRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		fields["description"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps the request to a domain patch.
func (r *PatchRecipeRequest) ToPatch() recipe.Patch {
	return recipe.Patch{Name: r.Name, Description: r.Description}
}

// AddIngredientRequest is the JSON body for POST /recipes/{id}/add_ingredient.
type AddIngredientRequest struct {
	IngredientID int64    `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity,omitempty"`
}

// Validate checks the ingredient reference and, when given, the quantity.
func (r *AddIngredientRequest) Validate() error {
	fields := make(map[string]string)

	if r.IngredientID <= 0 {
		fields["ingredient_id"] = msgMustPositive
	}
	if r.Quantity != nil {
		if msg := recipe.ValidateQuantity(*r.Quantity); msg != "" {
			fields["quantity"] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// QuantityOrDefault returns the supplied quantity or recipe.DefaultQuantity.
func (r *AddIngredientRequest) QuantityOrDefault() float64 {
	if r.Quantity == nil {
		return recipe.DefaultQuantity
	}
	return *r.Quantity
}

// RemoveIngredientRequest is the JSON body for POST /recipes/{id}/remove_ingredient.
type RemoveIngredientRequest struct {
	IngredientID int64 `json:"ingredient_id"`
}

// Validate checks the ingredient reference.
func (r *RemoveIngredientRequest) Validate() error {
	if r.IngredientID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"ingredient_id": msgMustPositive}}
	}
	return nil
}
