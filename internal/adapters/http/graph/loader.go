package graph

import (
	"context"

	appctx "github.com/jsamuelsen11/recipebox/internal/app/context"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

const (
	kindIngredient = "ingredient"
	kindRecipe     = "recipe"
)

func ingredientKey(id int64) appctx.Key { return appctx.Key{Kind: kindIngredient, ID: id} }

func recipeKey(id int64) appctx.Key { return appctx.Key{Kind: kindRecipe, ID: id} }

// loader memoizes single-entity lookups in the request cache so nested
// fields that name the same recipe or ingredient read it once per request.
type loader struct {
	ingredients ports.IngredientService
	recipes     ports.RecipeService
}

// cache returns the request cache installed by the RequestCache middleware.
// Without one, a throwaway cache is used and nothing is shared.
func cache(ctx context.Context) *appctx.RequestContext {
	if rc := appctx.FromContext(ctx); rc != nil {
		return rc
	}
	return appctx.New(ctx)
}

func (l *loader) ingredient(ctx context.Context, id int64) (*ingredient.Ingredient, error) {
	return appctx.GetOrFetch(cache(ctx), ingredientKey(id), func(ctx context.Context) (*ingredient.Ingredient, error) {
		return l.ingredients.GetIngredient(ctx, id)
	})
}

func (l *loader) recipe(ctx context.Context, id int64) (*recipe.Recipe, error) {
	return appctx.GetOrFetch(cache(ctx), recipeKey(id), func(ctx context.Context) (*recipe.Recipe, error) {
		return l.recipes.GetRecipe(ctx, id)
	})
}

// primeIngredients seeds the cache with listed ingredients.
func primeIngredients(ctx context.Context, items []ingredient.Ingredient) {
	rc := cache(ctx)
	for i := range items {
		rc.Put(ingredientKey(items[i].ID), &items[i])
	}
}

// primeRecipes seeds the cache with listed recipes.
func primeRecipes(ctx context.Context, items []recipe.Recipe) {
	rc := cache(ctx)
	for i := range items {
		rc.Put(recipeKey(items[i].ID), &items[i])
	}
}

// storeRecipe replaces the cached copy of r after a write.
func storeRecipe(ctx context.Context, r *recipe.Recipe) {
	cache(ctx).Put(recipeKey(r.ID), r)
}

// forgetRecipe drops the cached copy of a recipe whose composition changed.
func forgetRecipe(ctx context.Context, id int64) {
	cache(ctx).Invalidate(recipeKey(id))
}

// ingredientChanged replaces or drops the cached ingredient and every cached
// recipe, since compositions embed ingredient fields.
func ingredientChanged(ctx context.Context, id int64, ing *ingredient.Ingredient) {
	rc := cache(ctx)
	if ing != nil {
		rc.Put(ingredientKey(id), ing)
	} else {
		rc.Invalidate(ingredientKey(id))
	}
	rc.InvalidateKind(kindRecipe)
}
