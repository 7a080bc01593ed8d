package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

const entityRecipe = "recipe"

// ingredientCountExpr computes the live association count in the reading query.
const ingredientCountExpr = "(SELECT COUNT(*) FROM recipe_ingredients AS c WHERE c.recipe_id = r.id) AS ingredient_count"

func (s *Store) selectRecipes(ctx context.Context, dest any) *bun.SelectQuery {
	return s.conn(ctx).NewSelect().
		Model(dest).
		ColumnExpr("r.*").
		ColumnExpr(ingredientCountExpr)
}

// ListRecipes returns recipes newest first, id descending on ties.
func (s *Store) ListRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	if filter.Page.Empty() {
		return []recipe.Recipe{}, nil
	}

	var rows []recipeRow
	q := s.selectRecipes(ctx, &rows)
	q = applyNameFilter(q, "r.name", filter.Name)
	q = applyPage(q.OrderExpr("r.created_at DESC, r.id DESC"), filter.Page)

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	out := make([]recipe.Recipe, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// GetRecipe returns the recipe with its ingredient count, or domain.ErrNotFound.
func (s *Store) GetRecipe(ctx context.Context, id int64) (*recipe.Recipe, error) {
	row := new(recipeRow)
	if err := s.selectRecipes(ctx, row).Where("r.id = ?", id).Scan(ctx); err != nil {
		return nil, notFoundOr(err, "getting recipe", entityRecipe, id)
	}
	r := row.toDomain()
	return &r, nil
}

// CreateRecipe inserts the recipe without any associations.
func (s *Store) CreateRecipe(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	now := timestamp()
	row := &recipeRow{
		Name:        r.Name,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.conn(ctx).NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	created := row.toDomain()
	return &created, nil
}

// UpdateRecipe applies name and description from patch.
func (s *Store) UpdateRecipe(ctx context.Context, id int64, patch recipe.Patch) (*recipe.Recipe, error) {
	q := s.conn(ctx).NewUpdate().
		Model((*recipeRow)(nil)).
		Set("updated_at = ?", timestamp()).
		Where("id = ?", id)
	if patch.Name != nil {
		q = q.Set("name = ?", *patch.Name)
	}
	if patch.Description != nil {
		q = q.Set("description = ?", *patch.Description)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.NotFound(entityRecipe, id)
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes the recipe; the foreign key cascades to associations.
func (s *Store) DeleteRecipe(ctx context.Context, id int64) error {
	res, err := s.conn(ctx).NewDelete().
		Model((*recipeRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound(entityRecipe, id)
	}
	return nil
}

func (s *Store) recipeExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.conn(ctx).NewSelect().
		Model((*recipeRow)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("checking recipe: %w", err)
	}
	return ok, nil
}

func (s *Store) ingredientExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.conn(ctx).NewSelect().
		Model((*ingredientRow)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("checking ingredient: %w", err)
	}
	return ok, nil
}
