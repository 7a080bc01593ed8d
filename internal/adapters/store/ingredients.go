package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
)

const entityIngredient = "ingredient"

// ListIngredients returns ingredients ordered by name then id.
func (s *Store) ListIngredients(ctx context.Context, filter ingredient.Filter) ([]ingredient.Ingredient, error) {
	if filter.Page.Empty() {
		return []ingredient.Ingredient{}, nil
	}

	var rows []ingredientRow
	q := s.conn(ctx).NewSelect().Model(&rows)
	q = applyNameFilter(q, "i.name", filter.Name)
	q = applyPage(q.OrderExpr("i.name ASC, i.id ASC"), filter.Page)

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}

	out := make([]ingredient.Ingredient, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// GetIngredient returns domain.ErrNotFound when no row has id.
func (s *Store) GetIngredient(ctx context.Context, id int64) (*ingredient.Ingredient, error) {
	row := new(ingredientRow)
	err := s.conn(ctx).NewSelect().Model(row).Where("i.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, notFoundOr(err, "getting ingredient", entityIngredient, id)
	}
	ing := row.toDomain()
	return &ing, nil
}

// CreateIngredient inserts the ingredient and returns the stored row.
func (s *Store) CreateIngredient(ctx context.Context, ing *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	now := timestamp()
	row := &ingredientRow{
		Name:      ing.Name,
		Unit:      ing.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.conn(ctx).NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("creating ingredient: %w", err)
	}

	created := row.toDomain()
	return &created, nil
}

// UpdateIngredient applies the supplied fields and bumps updated_at.
func (s *Store) UpdateIngredient(ctx context.Context, id int64, patch ingredient.Patch) (*ingredient.Ingredient, error) {
	q := s.conn(ctx).NewUpdate().
		Model((*ingredientRow)(nil)).
		Set("updated_at = ?", timestamp()).
		Where("id = ?", id)
	if patch.Name != nil {
		q = q.Set("name = ?", *patch.Name)
	}
	if patch.Unit != nil {
		q = q.Set("unit = ?", *patch.Unit)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating ingredient: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.NotFound(entityIngredient, id)
	}

	return s.GetIngredient(ctx, id)
}

// DeleteIngredient removes the ingredient; the foreign key cascades to associations.
func (s *Store) DeleteIngredient(ctx context.Context, id int64) error {
	res, err := s.conn(ctx).NewDelete().
		Model((*ingredientRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting ingredient: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound(entityIngredient, id)
	}
	return nil
}

// missingIngredients returns the subset of ids with no matching ingredient row,
// in input order.
func (s *Store) missingIngredients(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []int64
	err := s.conn(ctx).NewSelect().
		Model((*ingredientRow)(nil)).
		Column("id").
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx, &found)
	if err != nil {
		return nil, fmt.Errorf("checking ingredients: %w", err)
	}

	present := make(map[int64]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
