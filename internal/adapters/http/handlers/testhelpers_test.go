package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withChiParams attaches route parameters the way chi does after matching.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withIdentity(r *http.Request, sub string) *http.Request {
	id := &domain.Identity{Subject: sub, Username: sub}
	return r.WithContext(domain.WithIdentity(r.Context(), id))
}

func validIngredient() ingredient.Ingredient {
	return ingredient.Ingredient{ID: 1, Name: "Flour", Unit: "g", CreatedAt: testTime, UpdatedAt: testTime}
}

// validRecipe is a one-ingredient bread owned by user-1.
func validRecipe() recipe.Recipe {
	flour := validIngredient()
	return recipe.Recipe{
		ID:              1,
		Name:            "Bread",
		Description:     "Basic loaf",
		CreatedBy:       "user-1",
		IngredientCount: 1,
		Ingredients:     []recipe.Association{{ID: 7, RecipeID: 1, IngredientID: 1, Quantity: 500, Ingredient: &flour}},
		CreatedAt:       testTime,
		UpdatedAt:       testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return bytes.NewBuffer(raw)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
