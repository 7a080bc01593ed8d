package ports

import (
	"context"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

// Transactor runs a unit of work atomically. Store calls made with the ctx
// passed to fn join the transaction; nested WithinTx calls join the outer one.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IngredientStore persists ingredients.
type IngredientStore interface {
	ListIngredients(ctx context.Context, filter ingredient.Filter) ([]ingredient.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*ingredient.Ingredient, error)
	CreateIngredient(ctx context.Context, ing *ingredient.Ingredient) (*ingredient.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, patch ingredient.Patch) (*ingredient.Ingredient, error)
	// DeleteIngredient cascades to associations.
	DeleteIngredient(ctx context.Context, id int64) error
}

// RecipeStore persists recipes. Reads carry IngredientCount computed in the
// same query; compositions are loaded through AssociationStore.
type RecipeStore interface {
	ListRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*recipe.Recipe, error)
	CreateRecipe(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error)
	// UpdateRecipe applies Name and Description; IngredientIDs is ignored.
	UpdateRecipe(ctx context.Context, id int64, patch recipe.Patch) (*recipe.Recipe, error)
	// DeleteRecipe cascades to associations.
	DeleteRecipe(ctx context.Context, id int64) error
}

// AssociationStore persists recipe/ingredient associations.
type AssociationStore interface {
	// ListAssociations returns a recipe's associations with Ingredient populated,
	// ordered by ingredient name.
	ListAssociations(ctx context.Context, recipeID int64) ([]recipe.Association, error)

	// ListAssociationsFor batch-loads associations for several recipes, keyed by recipe ID.
	ListAssociationsFor(ctx context.Context, recipeIDs []int64) (map[int64][]recipe.Association, error)

	// UpsertAssociation inserts or updates the single association for the
	// pair atomically. Returns domain.ErrNotFound if either side is missing.
	UpsertAssociation(ctx context.Context, recipeID, ingredientID int64, quantity float64) (*recipe.Association, error)

	// RemoveAssociation deletes the association and reports whether it existed.
	RemoveAssociation(ctx context.Context, recipeID, ingredientID int64) (bool, error)

	// ReplaceAssociations deletes every association of the recipe and creates
	// one per distinct id at quantity, in one transaction.
	// Returns domain.ErrNotFound (and changes nothing) if the recipe or any id is missing.
	ReplaceAssociations(ctx context.Context, recipeID int64, ingredientIDs []int64, quantity float64) ([]recipe.Association, error)
}

// Store is the full repository surface used by the application services.
type Store interface {
	Transactor
	IngredientStore
	RecipeStore
	AssociationStore
}
