// Package graph implements the GraphQL facade over the ingredient and recipe
// services. Lookups of absent entities resolve to null (or false for
// deletions) instead of errors; validation and store failures surface in the
// response errors array with an extensions.code.
package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// resolver binds the schema's root fields to the service ports.
type resolver struct {
	ingredients ports.IngredientService
	recipes     ports.RecipeService
	load        *loader
}

// NewSchema builds the executable schema.
func NewSchema(ingredients ports.IngredientService, recipes ports.RecipeService) (graphql.Schema, error) {
	res := &resolver{
		ingredients: ingredients,
		recipes:     recipes,
		load:        &loader{ingredients: ingredients, recipes: recipes},
	}
	t := newTypes(res.load)

	listArgsConfig := graphql.FieldConfigArgument{
		"name":   &graphql.ArgumentConfig{Type: graphql.String},
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
		"offset": &graphql.ArgumentConfig{Type: graphql.Int},
	}
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: nonNullInt},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ingredients": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.ingredient))),
				Args:    listArgsConfig,
				Resolve: res.listIngredients,
			},
			"ingredient": &graphql.Field{
				Type:    t.ingredient,
				Args:    idArg,
				Resolve: res.ingredient,
			},
			"recipes": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.recipe))),
				Args:    listArgsConfig,
				Resolve: res.listRecipes,
			},
			"recipe": &graphql.Field{
				Type:    t.recipe,
				Args:    idArg,
				Resolve: res.recipe,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createIngredient": &graphql.Field{
				Type: graphql.NewNonNull(t.ingredient),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.ingredientInput)},
				},
				Resolve: res.createIngredient,
			},
			"updateIngredient": &graphql.Field{
				Type: t.ingredient,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: nonNullInt},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.updateIngredientInput)},
				},
				Resolve: res.updateIngredient,
			},
			"deleteIngredient": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: res.deleteIngredient,
			},
			"createRecipe": &graphql.Field{
				Type: graphql.NewNonNull(t.recipe),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.recipeInput)},
				},
				Resolve: res.createRecipe,
			},
			"updateRecipe": &graphql.Field{
				Type: t.recipe,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: nonNullInt},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.updateRecipeInput)},
				},
				Resolve: res.updateRecipe,
			},
			"addIngredientToRecipe": &graphql.Field{
				Type: t.association,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.recipeIngredientInput)},
				},
				Resolve: res.addIngredientToRecipe,
			},
			"removeIngredientFromRecipe": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"recipeId":     &graphql.ArgumentConfig{Type: nonNullInt},
					"ingredientId": &graphql.ArgumentConfig{Type: nonNullInt},
				},
				Resolve: res.removeIngredientFromRecipe,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func (res *resolver) listIngredients(p graphql.ResolveParams) (any, error) {
	name, page, err := listArgs(p.Args)
	if err != nil {
		return fail(err)
	}

	items, err := res.ingredients.ListIngredients(p.Context, ingredient.Filter{Name: name, Page: page})
	if err != nil {
		return fail(err)
	}
	primeIngredients(p.Context, items)
	return ingredientPointers(items), nil
}

func (res *resolver) ingredient(p graphql.ResolveParams) (any, error) {
	id, _ := args(p.Args).integer("id")
	ing, err := res.load.ingredient(p.Context, id)
	return nullOnNotFound(ing, err)
}

func (res *resolver) listRecipes(p graphql.ResolveParams) (any, error) {
	name, page, err := listArgs(p.Args)
	if err != nil {
		return fail(err)
	}

	items, err := res.recipes.ListRecipes(p.Context, recipe.Filter{Name: name, Page: page})
	if err != nil {
		return fail(err)
	}
	primeRecipes(p.Context, items)
	return recipePointers(items), nil
}

func (res *resolver) recipe(p graphql.ResolveParams) (any, error) {
	id, _ := args(p.Args).integer("id")
	r, err := res.load.recipe(p.Context, id)
	return nullOnNotFound(r, err)
}

func (res *resolver) createIngredient(p graphql.ResolveParams) (any, error) {
	ing, err := decodeIngredientInput(args(p.Args).object("input"))
	if err != nil {
		return fail(err)
	}

	created, err := res.ingredients.CreateIngredient(p.Context, ing)
	if err != nil {
		return fail(err)
	}
	ingredientChanged(p.Context, created.ID, created)
	return created, nil
}

func (res *resolver) updateIngredient(p graphql.ResolveParams) (any, error) {
	a := args(p.Args)
	id, _ := a.integer("id")
	patch, err := decodeUpdateIngredientInput(a.object("input"))
	if err != nil {
		return fail(err)
	}

	updated, err := res.ingredients.UpdateIngredient(p.Context, id, patch)
	if err == nil {
		ingredientChanged(p.Context, id, updated)
	}
	return nullOnNotFound(updated, err)
}

func (res *resolver) deleteIngredient(p graphql.ResolveParams) (any, error) {
	id, _ := args(p.Args).integer("id")
	err := res.ingredients.DeleteIngredient(p.Context, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	case err != nil:
		return fail(err)
	}
	ingredientChanged(p.Context, id, nil)
	return true, nil
}

func (res *resolver) createRecipe(p graphql.ResolveParams) (any, error) {
	caller, ok := domain.IdentityFrom(p.Context)
	if !ok {
		return fail(domain.ErrUnauthenticated)
	}

	in, err := decodeRecipeInput(args(p.Args).object("input"), caller.Subject)
	if err != nil {
		return fail(err)
	}

	// A missing ingredient fails the whole mutation; nothing is created.
	created, err := res.recipes.CreateRecipe(p.Context, in.recipe, in.ingredientIDs)
	if err != nil {
		return fail(err)
	}
	storeRecipe(p.Context, created)
	return created, nil
}

func (res *resolver) updateRecipe(p graphql.ResolveParams) (any, error) {
	a := args(p.Args)
	id, _ := a.integer("id")
	patch, err := decodeUpdateRecipeInput(a.object("input"))
	if err != nil {
		return fail(err)
	}

	updated, err := res.recipes.UpdateRecipe(p.Context, id, patch)
	if err == nil {
		storeRecipe(p.Context, updated)
	}
	return nullOnNotFound(updated, err)
}

func (res *resolver) addIngredientToRecipe(p graphql.ResolveParams) (any, error) {
	in, err := decodeRecipeIngredientInput(args(p.Args).object("input"))
	if err != nil {
		return fail(err)
	}

	assoc, err := res.recipes.AddIngredient(p.Context, in.RecipeID, in.IngredientID, in.Quantity)
	if err == nil {
		forgetRecipe(p.Context, in.RecipeID)
	}
	return nullOnNotFound(assoc, err)
}

// removeIngredientFromRecipe reports true whether or not an association
// existed; only a store failure is an error.
func (res *resolver) removeIngredientFromRecipe(p graphql.ResolveParams) (any, error) {
	a := args(p.Args)
	recipeID, _ := a.integer("recipeId")
	ingredientID, _ := a.integer("ingredientId")

	if _, err := res.recipes.RemoveIngredient(p.Context, recipeID, ingredientID); err != nil {
		return fail(err)
	}
	forgetRecipe(p.Context, recipeID)
	return true, nil
}

func ingredientPointers(items []ingredient.Ingredient) []*ingredient.Ingredient {
	out := make([]*ingredient.Ingredient, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func recipePointers(items []recipe.Recipe) []*recipe.Recipe {
	out := make([]*recipe.Recipe, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
