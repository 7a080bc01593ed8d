package store

import (
	"context"
	"fmt"
)

// CreateSchema creates the tables and indexes if they do not exist.
// Association rows reference both parents with ON DELETE CASCADE and carry a
// UNIQUE (recipe_id, ingredient_id) constraint.
func (s *Store) CreateSchema(ctx context.Context) error {
	return s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)

		for _, model := range []any{(*ingredientRow)(nil), (*recipeRow)(nil)} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("creating table: %w", err)
			}
		}

		_, err := db.NewCreateTable().
			Model((*associationRow)(nil)).
			IfNotExists().
			ForeignKey(`("recipe_id") REFERENCES "recipes" ("id") ON DELETE CASCADE`).
			ForeignKey(`("ingredient_id") REFERENCES "ingredients" ("id") ON DELETE CASCADE`).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("creating recipe_ingredients table: %w", err)
		}

		indexes := []struct {
			model  any
			name   string
			column string
		}{
			{(*ingredientRow)(nil), "idx_ingredients_name", "name"},
			{(*recipeRow)(nil), "idx_recipes_created_at", "created_at"},
			{(*associationRow)(nil), "idx_recipe_ingredients_ingredient_id", "ingredient_id"},
		}
		for _, idx := range indexes {
			_, err := db.NewCreateIndex().
				Model(idx.model).
				Index(idx.name).
				Column(idx.column).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("creating index %s: %w", idx.name, err)
			}
		}

		s.logger.InfoContext(ctx, "database schema ready")
		return nil
	})
}
