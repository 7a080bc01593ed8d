package recipe

import (
	"fmt"
	"math"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
)

// Quantity bounds for the stored decimal(10,2) column.
const (
	DefaultQuantity = 1.0
	MaxQuantity     = 99999999.99
)

// Association links one recipe to one ingredient with a quantity.
// At most one association exists per (RecipeID, IngredientID).
type Association struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Quantity     float64
	// Ingredient is populated on reads.
	Ingredient *ingredient.Ingredient
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Association entity.
func (a *Association) Validate() error {
	fields := make(map[string]string)

	if a.RecipeID <= 0 {
		fields["recipe_id"] = fmt.Sprintf("must be positive, got %d", a.RecipeID)
	}
	if a.IngredientID <= 0 {
		fields["ingredient_id"] = fmt.Sprintf("must be positive, got %d", a.IngredientID)
	}
	if msg := ValidateQuantity(a.Quantity); msg != "" {
		fields["quantity"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateQuantity returns a non-empty message when q is out of range.
func ValidateQuantity(q float64) string {
	switch {
	case math.IsNaN(q) || math.IsInf(q, 0):
		return "must be a finite number"
	case RoundQuantity(q) <= 0:
		return fmt.Sprintf("must be positive, got %v", q)
	case RoundQuantity(q) > MaxQuantity:
		return fmt.Sprintf("must be at most %.2f, got %v", MaxQuantity, q)
	}
	return ""
}

// RoundQuantity rounds q half away from zero to two decimal places.
func RoundQuantity(q float64) float64 {
	return math.Round(q*100) / 100
}
