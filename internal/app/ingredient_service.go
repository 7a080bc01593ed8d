package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// Compile-time check that IngredientService implements ports.IngredientService.
var _ ports.IngredientService = (*IngredientService)(nil)

// IngredientService implements ports.IngredientService on top of the
// ingredient store. It handles validation and structured logging.
type IngredientService struct {
	store  ports.IngredientStore
	logger *slog.Logger
}

// NewIngredientService creates an IngredientService. A nil logger discards output.
func NewIngredientService(store ports.IngredientStore, logger *slog.Logger) *IngredientService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &IngredientService{
		store:  store,
		logger: logger,
	}
}

// ListIngredients returns ingredients ordered by name.
func (s *IngredientService) ListIngredients(ctx context.Context, filter ingredient.Filter) ([]ingredient.Ingredient, error) {
	s.logger.InfoContext(ctx, "listing ingredients", slog.String("name", filter.Name))

	if err := filter.Page.Validate(); err != nil {
		return nil, err
	}

	items, err := s.store.ListIngredients(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list ingredients",
			slog.String("operation", "ListIngredients"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return items, nil
}

// SearchIngredients returns every ingredient whose name contains name.
func (s *IngredientService) SearchIngredients(ctx context.Context, name string) ([]ingredient.Ingredient, error) {
	return s.ListIngredients(ctx, ingredient.Filter{Name: name})
}

// GetIngredient returns a single ingredient by ID.
func (s *IngredientService) GetIngredient(ctx context.Context, id int64) (*ingredient.Ingredient, error) {
	s.logger.InfoContext(ctx, "fetching ingredient", slog.Int64("id", id))

	ing, err := s.store.GetIngredient(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch ingredient",
			slog.String("operation", "GetIngredient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return ing, nil
}

// CreateIngredient validates and stores a new ingredient, returning it with
// server-assigned fields (ID, timestamps).
func (s *IngredientService) CreateIngredient(ctx context.Context, ing *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	s.logger.InfoContext(ctx, "creating ingredient", slog.String("name", ing.Name))

	if err := ing.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateIngredient(ctx, ing)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create ingredient",
			slog.String("operation", "CreateIngredient"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateIngredient applies the supplied fields. An empty patch returns the
// ingredient unchanged.
func (s *IngredientService) UpdateIngredient(ctx context.Context, id int64, patch ingredient.Patch) (*ingredient.Ingredient, error) {
	s.logger.InfoContext(ctx, "updating ingredient", slog.Int64("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsZero() {
		return s.GetIngredient(ctx, id)
	}

	updated, err := s.store.UpdateIngredient(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update ingredient",
			slog.String("operation", "UpdateIngredient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteIngredient deletes an ingredient. Recipes that used it lose the association.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting ingredient", slog.Int64("id", id))

	if err := s.store.DeleteIngredient(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete ingredient",
			slog.String("operation", "DeleteIngredient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
