package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func validIngredient() ingredient.Ingredient {
	return ingredient.Ingredient{
		ID:        1,
		Name:      "Flour",
		Unit:      "g",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if _, ok := ve.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields = %v, want key %q", ve.Fields, field)
	}
}

// --- NewIngredientService ---

func TestNewIngredientService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewIngredientService(mocks.NewMockStore(t), nil)
	if svc.logger == nil {
		t.Fatal("NewIngredientService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListIngredients ---

func TestIngredientService_ListIngredients(t *testing.T) {
	t.Parallel()

	t.Run("passes filter to the store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		filter := ingredient.Filter{Name: "sal", Page: domain.Page{Limit: intPtr(5)}}
		want := []ingredient.Ingredient{{ID: 2, Name: "Salt", Unit: "g"}}
		store.EXPECT().ListIngredients(mock.Anything, filter).Return(want, nil)

		got, err := svc.ListIngredients(context.Background(), filter)
		if err != nil {
			t.Fatalf("ListIngredients() error = %v, want nil", err)
		}
		if len(got) != 1 || got[0].Name != "Salt" {
			t.Errorf("ListIngredients() = %v, want [Salt]", got)
		}
	})

	t.Run("rejects negative offset before calling the store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		_, err := svc.ListIngredients(context.Background(), ingredient.Filter{Page: domain.Page{Offset: intPtr(-1)}})
		requireValidationField(t, err, "offset")
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		store.EXPECT().ListIngredients(mock.Anything, ingredient.Filter{}).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListIngredients(context.Background(), ingredient.Filter{})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListIngredients() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestIngredientService_SearchIngredients(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockStore(t)
	svc := NewIngredientService(store, discardLogger())

	store.EXPECT().ListIngredients(mock.Anything, ingredient.Filter{Name: "SAL"}).
		Return([]ingredient.Ingredient{{ID: 2, Name: "Salt", Unit: "g"}}, nil)

	got, err := svc.SearchIngredients(context.Background(), "SAL")
	if err != nil {
		t.Fatalf("SearchIngredients() error = %v, want nil", err)
	}
	if len(got) != 1 {
		t.Errorf("SearchIngredients() len = %d, want 1", len(got))
	}
}

// --- GetIngredient ---

func TestIngredientService_GetIngredient(t *testing.T) {
	t.Parallel()

	t.Run("returns ingredient", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		ing := validIngredient()
		store.EXPECT().GetIngredient(mock.Anything, int64(1)).Return(&ing, nil)

		got, err := svc.GetIngredient(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetIngredient() error = %v, want nil", err)
		}
		if got.Name != "Flour" {
			t.Errorf("GetIngredient().Name = %q, want %q", got.Name, "Flour")
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		store.EXPECT().GetIngredient(mock.Anything, int64(9)).Return(nil, domain.NotFound("ingredient", 9))

		_, err := svc.GetIngredient(context.Background(), 9)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetIngredient() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CreateIngredient ---

func TestIngredientService_CreateIngredient(t *testing.T) {
	t.Parallel()

	t.Run("creates valid ingredient", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		input := &ingredient.Ingredient{Name: "Flour", Unit: "g"}
		created := validIngredient()
		store.EXPECT().CreateIngredient(mock.Anything, input).Return(&created, nil)

		got, err := svc.CreateIngredient(context.Background(), input)
		if err != nil {
			t.Fatalf("CreateIngredient() error = %v, want nil", err)
		}
		if got.ID != 1 {
			t.Errorf("CreateIngredient().ID = %d, want 1", got.ID)
		}
	})

	t.Run("rejects blank unit without calling the store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		_, err := svc.CreateIngredient(context.Background(), &ingredient.Ingredient{Name: "Flour", Unit: "  "})
		requireValidationField(t, err, "unit")
	})
}

// --- UpdateIngredient ---

func TestIngredientService_UpdateIngredient(t *testing.T) {
	t.Parallel()

	t.Run("applies patch", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		patch := ingredient.Patch{Unit: strPtr("kg")}
		updated := validIngredient()
		updated.Unit = "kg"
		store.EXPECT().UpdateIngredient(mock.Anything, int64(1), patch).Return(&updated, nil)

		got, err := svc.UpdateIngredient(context.Background(), 1, patch)
		if err != nil {
			t.Fatalf("UpdateIngredient() error = %v, want nil", err)
		}
		if got.Unit != "kg" {
			t.Errorf("UpdateIngredient().Unit = %q, want %q", got.Unit, "kg")
		}
	})

	t.Run("empty patch reads current state", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		ing := validIngredient()
		store.EXPECT().GetIngredient(mock.Anything, int64(1)).Return(&ing, nil)

		got, err := svc.UpdateIngredient(context.Background(), 1, ingredient.Patch{})
		if err != nil {
			t.Fatalf("UpdateIngredient() error = %v, want nil", err)
		}
		if got.Name != "Flour" {
			t.Errorf("UpdateIngredient().Name = %q, want %q", got.Name, "Flour")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		_, err := svc.UpdateIngredient(context.Background(), 1, ingredient.Patch{Name: strPtr("")})
		requireValidationField(t, err, "name")
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		patch := ingredient.Patch{Name: strPtr("Rye")}
		store.EXPECT().UpdateIngredient(mock.Anything, int64(5), patch).Return(nil, domain.NotFound("ingredient", 5))

		_, err := svc.UpdateIngredient(context.Background(), 5, patch)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateIngredient() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteIngredient ---

func TestIngredientService_DeleteIngredient(t *testing.T) {
	t.Parallel()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		store.EXPECT().DeleteIngredient(mock.Anything, int64(1)).Return(nil)

		if err := svc.DeleteIngredient(context.Background(), 1); err != nil {
			t.Errorf("DeleteIngredient() error = %v, want nil", err)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		svc := NewIngredientService(store, discardLogger())

		store.EXPECT().DeleteIngredient(mock.Anything, int64(2)).Return(domain.NotFound("ingredient", 2))

		if err := svc.DeleteIngredient(context.Background(), 2); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteIngredient() error = %v, want ErrNotFound", err)
		}
	})
}
