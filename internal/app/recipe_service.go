package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// Compile-time check that RecipeService implements ports.RecipeService.
var _ ports.RecipeService = (*RecipeService)(nil)

// RecipeService implements ports.RecipeService. Multi-step writes (create
// with ingredients, update with a replacement composition) run inside one
// store transaction so a failure leaves nothing applied.
type RecipeService struct {
	store  ports.Store
	logger *slog.Logger
}

// NewRecipeService creates a RecipeService. A nil logger discards output.
func NewRecipeService(store ports.Store, logger *slog.Logger) *RecipeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RecipeService{
		store:  store,
		logger: logger,
	}
}

// ListRecipes returns recipes newest first, each with its composition.
func (s *RecipeService) ListRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	s.logger.InfoContext(ctx, "listing recipes", slog.String("name", filter.Name))

	if err := filter.Page.Validate(); err != nil {
		return nil, err
	}

	recipes, err := s.store.ListRecipes(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list recipes",
			slog.String("operation", "ListRecipes"),
			slog.Any("error", err),
		)
		return nil, err
	}

	ids := make([]int64, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}

	byRecipe, err := s.store.ListAssociationsFor(ctx, ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load recipe compositions",
			slog.String("operation", "ListRecipes"),
			slog.Any("error", err),
		)
		return nil, err
	}

	for i := range recipes {
		recipes[i].Ingredients = composition(byRecipe[recipes[i].ID])
	}
	return recipes, nil
}

// GetRecipe returns a recipe with its composition.
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*recipe.Recipe, error) {
	s.logger.InfoContext(ctx, "fetching recipe", slog.Int64("id", id))

	r, err := s.load(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch recipe",
			slog.String("operation", "GetRecipe"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return r, nil
}

// CreateRecipe stores the recipe and associates every distinct ingredient id
// at the default quantity. A missing ingredient rolls the whole create back.
func (s *RecipeService) CreateRecipe(ctx context.Context, r *recipe.Recipe, ingredientIDs []int64) (*recipe.Recipe, error) {
	s.logger.InfoContext(ctx, "creating recipe",
		slog.String("name", r.Name),
		slog.Int("ingredients", len(ingredientIDs)),
	)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := recipe.ValidateIngredientIDs(ingredientIDs); err != nil {
		return nil, err
	}

	var out *recipe.Recipe
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.store.CreateRecipe(ctx, r)
		if err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}

		for _, ingredientID := range recipe.DistinctIDs(ingredientIDs) {
			if _, err := s.store.UpsertAssociation(ctx, created.ID, ingredientID, recipe.DefaultQuantity); err != nil {
				return fmt.Errorf("adding ingredient %d: %w", ingredientID, err)
			}
		}

		out, err = s.load(ctx, created.ID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create recipe",
			slog.String("operation", "CreateRecipe"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// UpdateRecipe applies the supplied fields. When the patch carries ingredient
// ids, the existing composition is discarded and every id is associated at
// the default quantity, so previously stored quantities are reset.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, patch recipe.Patch) (*recipe.Recipe, error) {
	s.logger.InfoContext(ctx, "updating recipe",
		slog.Int64("id", id),
		slog.Bool("replace_ingredients", patch.ReplacesIngredients()),
	)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var out *recipe.Recipe
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		if patch.Name != nil || patch.Description != nil {
			if _, err := s.store.UpdateRecipe(ctx, id, patch); err != nil {
				return err
			}
		} else if _, err := s.store.GetRecipe(ctx, id); err != nil {
			return err
		}

		if patch.ReplacesIngredients() {
			if _, err := s.store.ReplaceAssociations(ctx, id, patch.IngredientIDs, recipe.DefaultQuantity); err != nil {
				return err
			}
		}

		var err error
		out, err = s.load(ctx, id)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update recipe",
			slog.String("operation", "UpdateRecipe"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// DeleteRecipe deletes a recipe together with its associations.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting recipe", slog.Int64("id", id))

	if err := s.store.DeleteRecipe(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete recipe",
			slog.String("operation", "DeleteRecipe"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// AddIngredient creates the association or updates its quantity.
func (s *RecipeService) AddIngredient(ctx context.Context, recipeID, ingredientID int64, quantity float64) (*recipe.Association, error) {
	s.logger.InfoContext(ctx, "adding ingredient to recipe",
		slog.Int64("recipe_id", recipeID),
		slog.Int64("ingredient_id", ingredientID),
	)

	a := recipe.Association{RecipeID: recipeID, IngredientID: ingredientID, Quantity: quantity}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.store.UpsertAssociation(ctx, recipeID, ingredientID, quantity)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add ingredient",
			slog.String("operation", "AddIngredient"),
			slog.Int64("recipe_id", recipeID),
			slog.Int64("ingredient_id", ingredientID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stored, nil
}

// RemoveIngredient deletes the association and reports whether it existed.
func (s *RecipeService) RemoveIngredient(ctx context.Context, recipeID, ingredientID int64) (bool, error) {
	s.logger.InfoContext(ctx, "removing ingredient from recipe",
		slog.Int64("recipe_id", recipeID),
		slog.Int64("ingredient_id", ingredientID),
	)

	removed, err := s.store.RemoveAssociation(ctx, recipeID, ingredientID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove ingredient",
			slog.String("operation", "RemoveIngredient"),
			slog.Int64("recipe_id", recipeID),
			slog.Int64("ingredient_id", ingredientID),
			slog.Any("error", err),
		)
		return false, err
	}

	return removed, nil
}

// load reads a recipe and its composition with the ctx's connection.
func (s *RecipeService) load(ctx context.Context, id int64) (*recipe.Recipe, error) {
	r, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	assocs, err := s.store.ListAssociations(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Ingredients = composition(assocs)
	return r, nil
}

func composition(assocs []recipe.Association) []recipe.Association {
	if assocs == nil {
		return []recipe.Association{}
	}
	return assocs
}
