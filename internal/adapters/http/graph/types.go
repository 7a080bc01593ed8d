package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

// types holds the object and input types of the schema.
type types struct {
	ingredient  *graphql.Object
	recipe      *graphql.Object
	association *graphql.Object

	ingredientInput       *graphql.InputObject
	updateIngredientInput *graphql.InputObject
	recipeInput           *graphql.InputObject
	updateRecipeInput     *graphql.InputObject
	recipeIngredientInput *graphql.InputObject
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

var (
	nonNullInt    = graphql.NewNonNull(graphql.Int)
	nonNullString = graphql.NewNonNull(graphql.String)
)

func newTypes(l *loader) *types {
	t := &types{}

	t.ingredient = graphql.NewObject(graphql.ObjectConfig{
		Name: "Ingredient",
		Fields: graphql.Fields{
			"id":        ingredientField(nonNullInt, func(i *ingredient.Ingredient) any { return int(i.ID) }),
			"name":      ingredientField(nonNullString, func(i *ingredient.Ingredient) any { return i.Name }),
			"unit":      ingredientField(nonNullString, func(i *ingredient.Ingredient) any { return i.Unit }),
			"createdAt": ingredientField(nonNullString, func(i *ingredient.Ingredient) any { return timestamp(i.CreatedAt) }),
			"updatedAt": ingredientField(nonNullString, func(i *ingredient.Ingredient) any { return timestamp(i.UpdatedAt) }),
		},
	})

	t.association = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Association",
		Description: "An ingredient used by a recipe, with its quantity.",
		Fields: graphql.Fields{
			"id":         associationField(nonNullInt, func(a *recipe.Association) any { return int(a.ID) }),
			"quantity":   associationField(graphql.NewNonNull(graphql.Float), func(a *recipe.Association) any { return a.Quantity }),
			"ingredient": &graphql.Field{
				Type: graphql.NewNonNull(t.ingredient),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					a, ok := asAssociation(p.Source)
					if !ok {
						return nil, nil
					}
					if a.Ingredient != nil {
						return a.Ingredient, nil
					}
					ing, err := l.ingredient(p.Context, a.IngredientID)
					if err != nil {
						return fail(err)
					}
					return ing, nil
				},
			},
		},
	})

	t.recipe = graphql.NewObject(graphql.ObjectConfig{
		Name: "Recipe",
		Fields: graphql.Fields{
			"id":              recipeField(nonNullInt, func(r *recipe.Recipe) any { return int(r.ID) }),
			"name":            recipeField(nonNullString, func(r *recipe.Recipe) any { return r.Name }),
			"description":     recipeField(nonNullString, func(r *recipe.Recipe) any { return r.Description }),
			"createdBy":       recipeField(nonNullString, func(r *recipe.Recipe) any { return r.CreatedBy }),
			"createdAt":       recipeField(nonNullString, func(r *recipe.Recipe) any { return timestamp(r.CreatedAt) }),
			"updatedAt":       recipeField(nonNullString, func(r *recipe.Recipe) any { return timestamp(r.UpdatedAt) }),
			"ingredientCount": recipeField(nonNullInt, func(r *recipe.Recipe) any { return r.IngredientCount }),
			"ingredients":     recipeField(graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.association))), composition),
		},
	})

	// Association.recipe closes the Recipe/Association cycle.
	t.association.AddFieldConfig("recipe", &graphql.Field{
		Type: graphql.NewNonNull(t.recipe),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			a, ok := asAssociation(p.Source)
			if !ok {
				return nil, nil
			}
			r, err := l.recipe(p.Context, a.RecipeID)
			if err != nil {
				return fail(err)
			}
			return r, nil
		},
	})

	t.ingredientInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "IngredientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"unit": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.updateIngredientInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateIngredientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"unit": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.recipeInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RecipeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"ingredients": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
			},
		},
	})

	t.updateRecipeInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateRecipeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"ingredients": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewList(graphql.NewNonNull(graphql.Int)),
				Description: "Replaces the whole composition at quantity 1.0 when supplied.",
			},
		},
	})

	t.recipeIngredientInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RecipeIngredientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"recipeId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"ingredientId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"quantity":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	return t
}

func ingredientField(typ graphql.Output, get func(*ingredient.Ingredient) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			i, ok := p.Source.(*ingredient.Ingredient)
			if !ok || i == nil {
				return nil, nil
			}
			return get(i), nil
		},
	}
}

func recipeField(typ graphql.Output, get func(*recipe.Recipe) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			r, ok := p.Source.(*recipe.Recipe)
			if !ok || r == nil {
				return nil, nil
			}
			return get(r), nil
		},
	}
}

func associationField(typ graphql.Output, get func(*recipe.Association) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			a, ok := asAssociation(p.Source)
			if !ok {
				return nil, nil
			}
			return get(a), nil
		},
	}
}

// composition exposes a recipe's associations as pointers so every
// Association resolver sees the same source type.
func composition(r *recipe.Recipe) any {
	out := make([]*recipe.Association, len(r.Ingredients))
	for i := range r.Ingredients {
		out[i] = &r.Ingredients[i]
	}
	return out
}

func asAssociation(src any) (*recipe.Association, bool) {
	a, ok := src.(*recipe.Association)
	return a, ok && a != nil
}
