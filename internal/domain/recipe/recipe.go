// Package recipe defines the Recipe entity and the Association that links a
// recipe to an ingredient with a quantity.
package recipe

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// MaxNameLength is the longest recipe name accepted.
const MaxNameLength = 200

// Recipe is a named, owned composition of ingredients.
type Recipe struct {
	ID          int64
	Name        string
	Description string
	// CreatedBy is the identity subject of the creator. Authorship only.
	CreatedBy string
	// Ingredients is populated on single-recipe reads.
	Ingredients []Association
	// IngredientCount is derived from the live association rows on every read.
	IngredientCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks business rules for the Recipe entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Recipe) Validate() error {
	fields := make(map[string]string)

	checkName(fields, r.Name)
	if strings.TrimSpace(r.CreatedBy) == "" {
		fields["created_by"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged. A non-nil
// IngredientIDs (even empty) replaces the whole composition.
type Patch struct {
	Name          *string
	Description   *string
	IngredientIDs []int64
}

// ReplacesIngredients reports whether the patch carries a composition.
func (p Patch) ReplacesIngredients() bool {
	return p.IngredientIDs != nil
}

// Validate checks only the supplied fields.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil {
		checkName(fields, *p.Name)
	}
	checkIDs(fields, p.IngredientIDs)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter narrows a recipe listing. An empty Name means "no name filter".
type Filter struct {
	Name string
	Page domain.Page
}

// ValidateIngredientIDs checks an initial composition list.
func ValidateIngredientIDs(ids []int64) error {
	fields := make(map[string]string)
	checkIDs(fields, ids)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DistinctIDs returns ids in input order with duplicates collapsed.
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkName(fields map[string]string, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		fields["name"] = domain.MsgRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields["name"] = fmt.Sprintf("must be at most %d characters", MaxNameLength)
	}
}

func checkIDs(fields map[string]string, ids []int64) {
	for _, id := range ids {
		if id <= 0 {
			fields["ingredients"] = fmt.Sprintf("must be positive ids, got %d", id)
			return
		}
	}
}
