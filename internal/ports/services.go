package ports

import (
	"context"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

// IngredientService defines the service port for ingredient operations.
// Implemented by the application layer; called by both inbound facades.
type IngredientService interface {
	// ListIngredients returns ingredients ordered by name, narrowed by filter.
	// Returns domain.ErrValidation for a negative limit or offset.
	ListIngredients(ctx context.Context, filter ingredient.Filter) ([]ingredient.Ingredient, error)

	// SearchIngredients returns every ingredient whose name contains name,
	// ignoring case. An empty name matches everything.
	SearchIngredients(ctx context.Context, name string) ([]ingredient.Ingredient, error)

	// GetIngredient returns a single ingredient by ID.
	// Returns domain.ErrNotFound if the ingredient does not exist.
	GetIngredient(ctx context.Context, id int64) (*ingredient.Ingredient, error)

	// CreateIngredient validates and stores a new ingredient.
	// Returns domain.ErrValidation if the ingredient fails validation.
	CreateIngredient(ctx context.Context, ing *ingredient.Ingredient) (*ingredient.Ingredient, error)

	// UpdateIngredient applies a partial update.
	// Returns domain.ErrNotFound if the ingredient does not exist.
	UpdateIngredient(ctx context.Context, id int64, patch ingredient.Patch) (*ingredient.Ingredient, error)

	// DeleteIngredient deletes an ingredient and every association referencing it.
	// Returns domain.ErrNotFound if the ingredient does not exist.
	DeleteIngredient(ctx context.Context, id int64) error
}

// RecipeService defines the service port for recipe aggregate operations,
// including the recipe's ingredient composition.
type RecipeService interface {
	// ListRecipes returns recipes newest first with counts and compositions populated.
	ListRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error)

	// GetRecipe returns a single recipe with its composition populated.
	// Returns domain.ErrNotFound if the recipe does not exist.
	GetRecipe(ctx context.Context, id int64) (*recipe.Recipe, error)

	// CreateRecipe stores a recipe and associates every ingredient in
	// ingredientIDs at the default quantity, atomically.
	// Returns domain.ErrNotFound (and creates nothing) if any ingredient is missing.
	CreateRecipe(ctx context.Context, r *recipe.Recipe, ingredientIDs []int64) (*recipe.Recipe, error)

	// UpdateRecipe applies a partial update. A patch carrying ingredient IDs
	// replaces the whole composition at the default quantity.
	// Returns domain.ErrNotFound (and applies nothing) if the recipe or any
	// ingredient is missing.
	UpdateRecipe(ctx context.Context, id int64, patch recipe.Patch) (*recipe.Recipe, error)

	// DeleteRecipe deletes a recipe and its associations.
	// Returns domain.ErrNotFound if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id int64) error

	// AddIngredient creates or updates the association between a recipe and
	// an ingredient. Calling it twice leaves one association carrying the
	// later quantity.
	// Returns domain.ErrNotFound if the recipe or the ingredient does not exist.
	AddIngredient(ctx context.Context, recipeID, ingredientID int64, quantity float64) (*recipe.Association, error)

	// RemoveIngredient deletes the association if present and reports
	// whether one existed.
	RemoveIngredient(ctx context.Context, recipeID, ingredientID int64) (bool, error)
}
