// Package ingredient defines the Ingredient entity: a named, unit-bearing
// building block that recipes reference with a quantity.
package ingredient

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// Field length limits enforced before storage.
const (
	MaxNameLength = 100
	MaxUnitLength = 50
)

// Ingredient is a named measurable component. Duplicate names are permitted.
type Ingredient struct {
	ID        int64
	Name      string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Ingredient entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (i *Ingredient) Validate() error {
	fields := make(map[string]string)

	checkName(fields, i.Name)
	checkUnit(fields, i.Unit)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name *string
	Unit *string
}

// Validate checks only the supplied fields.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil {
		checkName(fields, *p.Name)
	}
	if p.Unit != nil {
		checkUnit(fields, *p.Unit)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsZero reports whether the patch supplies no field.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Unit == nil
}

// Apply copies the supplied fields onto i.
func (p Patch) Apply(i *Ingredient) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Unit != nil {
		i.Unit = *p.Unit
	}
}

// Filter narrows an ingredient listing. An empty Name means "no name filter";
// otherwise it is a case-insensitive substring match.
type Filter struct {
	Name string
	Page domain.Page
}

func checkName(fields map[string]string, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		fields["name"] = domain.MsgRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields["name"] = fmt.Sprintf("must be at most %d characters", MaxNameLength)
	}
}

func checkUnit(fields map[string]string, unit string) {
	switch {
	case strings.TrimSpace(unit) == "":
		fields["unit"] = domain.MsgRequired
	case utf8.RuneCountInString(unit) > MaxUnitLength:
		fields["unit"] = fmt.Sprintf("must be at most %d characters", MaxUnitLength)
	}
}
