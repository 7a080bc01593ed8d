package graph

import (
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

// args wraps a resolver's argument map with typed accessors. Values arrive
// already coerced by the executor: Int as int, Float as float64, lists as
// []any and input objects as map[string]any.
type args map[string]any

func (a args) integer(name string) (int64, bool) {
	switch v := a[name].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

func (a args) intPtr(name string) *int {
	v, ok := a.integer(name)
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}

func (a args) str(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a args) strPtr(name string) *string {
	s, ok := a[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (a args) float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// ids returns the list argument name as int64 ids. The second result is
// false when the argument is absent or null; an empty list yields a
// non-nil empty slice.
func (a args) ids(name string) ([]int64, bool) {
	raw, ok := a[name].([]any)
	if !ok {
		return nil, false
	}
	out := make([]int64, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case int:
			out = append(out, int64(v))
		case int64:
			out = append(out, v)
		case float64:
			out = append(out, int64(v))
		}
	}
	return out, true
}

func (a args) object(name string) args {
	m, _ := a[name].(map[string]any)
	return args(m)
}

// listArgs decodes the shared name/limit/offset arguments of list queries.
func listArgs(a args) (string, domain.Page, error) {
	page := domain.Page{Limit: a.intPtr("limit"), Offset: a.intPtr("offset")}
	if err := page.Validate(); err != nil {
		return "", domain.Page{}, err
	}
	return a.str("name"), page, nil
}

// decodeIngredientInput reads an IngredientInput into a validated entity.
func decodeIngredientInput(a args) (*ingredient.Ingredient, error) {
	ing := &ingredient.Ingredient{Name: a.str("name"), Unit: a.str("unit")}
	if err := ing.Validate(); err != nil {
		return nil, err
	}
	return ing, nil
}

// decodeUpdateIngredientInput reads an UpdateIngredientInput into a
// validated partial update.
func decodeUpdateIngredientInput(a args) (ingredient.Patch, error) {
	patch := ingredient.Patch{Name: a.strPtr("name"), Unit: a.strPtr("unit")}
	if err := patch.Validate(); err != nil {
		return ingredient.Patch{}, err
	}
	return patch, nil
}

// recipeInput is a decoded RecipeInput.
type recipeInput struct {
	recipe        *recipe.Recipe
	ingredientIDs []int64
}

// decodeRecipeInput reads a RecipeInput, attributing the recipe to owner.
func decodeRecipeInput(a args, owner string) (recipeInput, error) {
	r := &recipe.Recipe{
		Name:        a.str("name"),
		Description: a.str("description"),
		CreatedBy:   owner,
	}
	if err := r.Validate(); err != nil {
		return recipeInput{}, err
	}

	ids, _ := a.ids("ingredients")
	if err := recipe.ValidateIngredientIDs(ids); err != nil {
		return recipeInput{}, err
	}
	return recipeInput{recipe: r, ingredientIDs: ids}, nil
}

// decodeUpdateRecipeInput reads an UpdateRecipeInput. A supplied
// ingredients list, even an empty one, replaces the composition.
func decodeUpdateRecipeInput(a args) (recipe.Patch, error) {
	patch := recipe.Patch{
		Name:        a.strPtr("name"),
		Description: a.strPtr("description"),
	}
	if ids, ok := a.ids("ingredients"); ok {
		patch.IngredientIDs = ids
	}
	if err := patch.Validate(); err != nil {
		return recipe.Patch{}, err
	}
	return patch, nil
}

// decodeRecipeIngredientInput reads a RecipeIngredientInput.
func decodeRecipeIngredientInput(a args) (recipe.Association, error) {
	recipeID, _ := a.integer("recipeId")
	ingredientID, _ := a.integer("ingredientId")
	assoc := recipe.Association{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     a.float("quantity"),
	}
	if err := assoc.Validate(); err != nil {
		return recipe.Association{}, err
	}
	return assoc, nil
}
