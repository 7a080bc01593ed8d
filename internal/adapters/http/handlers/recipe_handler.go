package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

const statusIngredientRemoved = "ingredient removed"

// RecipeHandler handles HTTP requests for the recipe resource and its
// add_ingredient and remove_ingredient actions.
type RecipeHandler struct {
	svc ports.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler with the given service port.
func NewRecipeHandler(svc ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// ListRecipes handles GET /api/recipes.
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	name, page, err := listQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	recipes, err := h.svc.ListRecipes(r.Context(), recipe.Filter{Name: name, Page: page})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToRecipeListResponse(recipes))
}

// CreateRecipe handles POST /api/recipes. The caller becomes the owner.
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	owner, err := subject(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RecipeRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateRecipe(r.Context(), req.ToRecipe(owner), nil)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToRecipeResponse(created))
}

// GetRecipe handles GET /api/recipes/{id}.
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetRecipe(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToRecipeResponse(rec))
}

// ReplaceRecipe handles PUT /api/recipes/{id}.
func (h *RecipeHandler) ReplaceRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RecipeRequest
	if !readBody(w, r, &req) {
		return
	}

	h.update(w, r, id, req.ToPatch())
}

// PatchRecipe handles PATCH /api/recipes/{id}.
func (h *RecipeHandler) PatchRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PatchRecipeRequest
	if !readBody(w, r, &req) {
		return
	}

	h.update(w, r, id, req.ToPatch())
}

func (h *RecipeHandler) update(w http.ResponseWriter, r *http.Request, id int64, patch recipe.Patch) {
	updated, err := h.svc.UpdateRecipe(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToRecipeResponse(updated))
}

// DeleteRecipe handles DELETE /api/recipes/{id}.
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteRecipe(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddIngredient handles POST /api/recipes/{id}/add_ingredient. Repeating the
// call for the same ingredient updates the quantity in place.
func (h *RecipeHandler) AddIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddIngredientRequest
	if !readBody(w, r, &req) {
		return
	}

	a, err := h.svc.AddIngredient(r.Context(), id, req.IngredientID, req.QuantityOrDefault())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToAssociationResponse(a))
}

// RemoveIngredient handles POST /api/recipes/{id}/remove_ingredient.
// Responds 404 when the recipe does not use the ingredient.
func (h *RecipeHandler) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RemoveIngredientRequest
	if !readBody(w, r, &req) {
		return
	}

	removed, err := h.svc.RemoveIngredient(r.Context(), id, req.IngredientID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !removed {
		dto.WriteErrorResponse(w, r, fmt.Errorf("recipe %d ingredient %d: %w", id, req.IngredientID, domain.ErrNotFound))
		return
	}

	respond(w, r, http.StatusOK, dto.StatusResponse{Status: statusIngredientRemoved})
}
