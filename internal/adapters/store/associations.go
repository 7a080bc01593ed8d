package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

const associationOrder = `"ingredient"."name" ASC, ri.id ASC`

// ListAssociations returns the recipe's associations with their ingredients.
// An unknown recipe yields an empty slice.
func (s *Store) ListAssociations(ctx context.Context, recipeID int64) ([]recipe.Association, error) {
	var rows []associationRow
	err := s.conn(ctx).NewSelect().
		Model(&rows).
		Relation("Ingredient").
		Where("ri.recipe_id = ?", recipeID).
		OrderExpr(associationOrder).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing associations: %w", err)
	}

	out := make([]recipe.Association, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ListAssociationsFor loads associations for many recipes in one query.
// Recipes without associations are absent from the map.
func (s *Store) ListAssociationsFor(ctx context.Context, recipeIDs []int64) (map[int64][]recipe.Association, error) {
	out := make(map[int64][]recipe.Association, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	var rows []associationRow
	err := s.conn(ctx).NewSelect().
		Model(&rows).
		Relation("Ingredient").
		Where("ri.recipe_id IN (?)", bun.In(recipeIDs)).
		OrderExpr(associationOrder).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing associations: %w", err)
	}

	for i := range rows {
		out[rows[i].RecipeID] = append(out[rows[i].RecipeID], rows[i].toDomain())
	}
	return out, nil
}

// UpsertAssociation creates the (recipe, ingredient) association or updates
// its quantity with a single INSERT ... ON CONFLICT statement. A unique
// violation reported by the driver is resolved by updating the existing row.
func (s *Store) UpsertAssociation(ctx context.Context, recipeID, ingredientID int64, quantity float64) (*recipe.Association, error) {
	if err := s.requireParents(ctx, recipeID, ingredientID); err != nil {
		return nil, err
	}

	now := timestamp()
	row := &associationRow{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     columnQuantity(quantity),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.conn(ctx).NewInsert().
		Model(row).
		On("CONFLICT (recipe_id, ingredient_id) DO UPDATE").
		Set("quantity = EXCLUDED.quantity").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("NULL").
		Exec(ctx)

	switch {
	case err == nil:
	case isUniqueViolation(err):
		s.logger.WarnContext(ctx, "association insert raced, updating existing row",
			slog.Int64("recipe_id", recipeID),
			slog.Int64("ingredient_id", ingredientID),
		)
		if err := s.updateQuantity(ctx, recipeID, ingredientID, row.Quantity, now); err != nil {
			return nil, err
		}
	case isForeignKeyViolation(err):
		return nil, fmt.Errorf("recipe %d or ingredient %d: %w", recipeID, ingredientID, domain.ErrNotFound)
	default:
		return nil, fmt.Errorf("upserting association: %w", err)
	}

	return s.getAssociation(ctx, recipeID, ingredientID)
}

// RemoveAssociation deletes the pair's association and reports whether one existed.
func (s *Store) RemoveAssociation(ctx context.Context, recipeID, ingredientID int64) (bool, error) {
	res, err := s.conn(ctx).NewDelete().
		Model((*associationRow)(nil)).
		Where("recipe_id = ?", recipeID).
		Where("ingredient_id = ?", ingredientID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("removing association: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("removing association: %w", err)
	}
	return n > 0, nil
}

// ReplaceAssociations swaps the recipe's whole composition for one
// association per distinct id at quantity. Nothing changes unless every id resolves.
func (s *Store) ReplaceAssociations(ctx context.Context, recipeID int64, ingredientIDs []int64, quantity float64) ([]recipe.Association, error) {
	var out []recipe.Association

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.recipeExists(ctx, recipeID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NotFound(entityRecipe, recipeID)
		}

		ids := recipe.DistinctIDs(ingredientIDs)
		missing, err := s.missingIngredients(ctx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return domain.NotFound(entityIngredient, missing[0])
		}

		db := s.conn(ctx)
		if _, err := db.NewDelete().
			Model((*associationRow)(nil)).
			Where("recipe_id = ?", recipeID).
			Exec(ctx); err != nil {
			return fmt.Errorf("clearing associations: %w", err)
		}

		if len(ids) > 0 {
			now := timestamp()
			rows := make([]associationRow, len(ids))
			for i, id := range ids {
				rows[i] = associationRow{
					RecipeID:     recipeID,
					IngredientID: id,
					Quantity:     columnQuantity(quantity),
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			}
			if _, err := db.NewInsert().Model(&rows).Returning("NULL").Exec(ctx); err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("replacing associations: %w", domain.ErrNotFound)
				}
				return fmt.Errorf("inserting associations: %w", err)
			}
		}

		out, err = s.ListAssociations(ctx, recipeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) requireParents(ctx context.Context, recipeID, ingredientID int64) error {
	ok, err := s.recipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(entityRecipe, recipeID)
	}

	ok, err = s.ingredientExists(ctx, ingredientID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(entityIngredient, ingredientID)
	}
	return nil
}

func (s *Store) updateQuantity(ctx context.Context, recipeID, ingredientID int64, quantity decimal.Decimal, at time.Time) error {
	_, err := s.conn(ctx).NewUpdate().
		Model((*associationRow)(nil)).
		Set("quantity = ?", quantity).
		Set("updated_at = ?", at).
		Where("recipe_id = ?", recipeID).
		Where("ingredient_id = ?", ingredientID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("updating association quantity: %w", err)
	}
	return nil
}

func (s *Store) getAssociation(ctx context.Context, recipeID, ingredientID int64) (*recipe.Association, error) {
	row := new(associationRow)
	err := s.conn(ctx).NewSelect().
		Model(row).
		Relation("Ingredient").
		Where("ri.recipe_id = ?", recipeID).
		Where("ri.ingredient_id = ?", ingredientID).
		Scan(ctx)
	if err != nil {
		return nil, notFoundOr(err, "getting association", "association", recipeID)
	}
	a := row.toDomain()
	return &a, nil
}
