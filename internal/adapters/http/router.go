// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/recipebox/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The authenticate
// middleware gates the /api and /graphql surfaces; health probes stay open.
func NewRouter(
	ingredientHandler *handlers.IngredientHandler,
	recipeHandler *handlers.RecipeHandler,
	healthHandler *handlers.HealthHandler,
	graphHandler http.Handler,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	// Both "/api/recipes" and "/api/recipes/" resolve to the same route.
	r.Use(chimw.StripSlashes)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (unauthenticated).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Group(func(r chi.Router) {
		r.Use(authenticate, middleware.RequestCache())

		r.Route("/api", func(r chi.Router) {
			// Ingredient CRUD.
			r.Get("/ingredients", ingredientHandler.ListIngredients)
			r.Post("/ingredients", ingredientHandler.CreateIngredient)
			r.Get("/ingredients/search", ingredientHandler.SearchIngredients)
			r.Get("/ingredients/{id}", ingredientHandler.GetIngredient)
			r.Put("/ingredients/{id}", ingredientHandler.ReplaceIngredient)
			r.Patch("/ingredients/{id}", ingredientHandler.PatchIngredient)
			r.Delete("/ingredients/{id}", ingredientHandler.DeleteIngredient)

			// Recipe CRUD.
			r.Get("/recipes", recipeHandler.ListRecipes)
			r.Post("/recipes", recipeHandler.CreateRecipe)
			r.Get("/recipes/{id}", recipeHandler.GetRecipe)
			r.Put("/recipes/{id}", recipeHandler.ReplaceRecipe)
			r.Patch("/recipes/{id}", recipeHandler.PatchRecipe)
			r.Delete("/recipes/{id}", recipeHandler.DeleteRecipe)

			// Recipe composition.
			r.Post("/recipes/{id}/add_ingredient", recipeHandler.AddIngredient)
			r.Post("/recipes/{id}/remove_ingredient", recipeHandler.RemoveIngredient)
		})

		r.Method(http.MethodGet, "/graphql", graphHandler)
		r.Method(http.MethodPost, "/graphql", graphHandler)
	})

	return r
}
