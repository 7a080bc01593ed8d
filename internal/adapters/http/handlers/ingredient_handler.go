// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// IngredientHandler handles HTTP requests for the ingredient resource.
type IngredientHandler struct {
	svc ports.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler with the given service port.
func NewIngredientHandler(svc ports.IngredientService) *IngredientHandler {
	return &IngredientHandler{svc: svc}
}

// ListIngredients handles GET /api/ingredients.
func (h *IngredientHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	name, page, err := listQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListIngredients(r.Context(), ingredient.Filter{Name: name, Page: page})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToIngredientListResponse(items))
}

// SearchIngredients handles GET /api/ingredients/search?name=.
func (h *IngredientHandler) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.SearchIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToIngredientListResponse(items))
}

// CreateIngredient handles POST /api/ingredients.
func (h *IngredientHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req dto.IngredientRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateIngredient(r.Context(), req.ToIngredient())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToIngredientResponse(created))
}

// GetIngredient handles GET /api/ingredients/{id}.
func (h *IngredientHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ing, err := h.svc.GetIngredient(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToIngredientResponse(ing))
}

// ReplaceIngredient handles PUT /api/ingredients/{id}. Every field is required.
func (h *IngredientHandler) ReplaceIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.IngredientRequest
	if !readBody(w, r, &req) {
		return
	}

	h.update(w, r, id, req.ToPatch())
}

// PatchIngredient handles PATCH /api/ingredients/{id}.
func (h *IngredientHandler) PatchIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PatchIngredientRequest
	if !readBody(w, r, &req) {
		return
	}

	h.update(w, r, id, req.ToPatch())
}

func (h *IngredientHandler) update(w http.ResponseWriter, r *http.Request, id int64, patch ingredient.Patch) {
	updated, err := h.svc.UpdateIngredient(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToIngredientResponse(updated))
}

// DeleteIngredient handles DELETE /api/ingredients/{id}.
func (h *IngredientHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteIngredient(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
