package ingredient

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

func strPtr(s string) *string { return &s }

// requireValidationField asserts err wraps domain.ErrValidation and names field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestIngredient_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ing       Ingredient
		wantField string
	}{
		{name: "valid", ing: Ingredient{Name: "Salt", Unit: "g"}},
		{name: "empty name", ing: Ingredient{Name: "", Unit: "g"}, wantField: "name"},
		{name: "blank name", ing: Ingredient{Name: "   ", Unit: "g"}, wantField: "name"},
		{name: "empty unit", ing: Ingredient{Name: "Salt"}, wantField: "unit"},
		{name: "long name", ing: Ingredient{Name: strings.Repeat("a", MaxNameLength+1), Unit: "g"}, wantField: "name"},
		{name: "long unit", ing: Ingredient{Name: "Salt", Unit: strings.Repeat("u", MaxUnitLength+1)}, wantField: "unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ing.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestPatch(t *testing.T) {
	t.Parallel()

	t.Run("zero patch is valid and changes nothing", func(t *testing.T) {
		t.Parallel()
		p := Patch{}
		if !p.IsZero() {
			t.Error("IsZero() = false, want true")
		}
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
		ing := Ingredient{Name: "Salt", Unit: "g"}
		p.Apply(&ing)
		if ing.Name != "Salt" || ing.Unit != "g" {
			t.Errorf("Apply() changed ingredient to %+v", ing)
		}
	})

	t.Run("supplied empty name is rejected", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, Patch{Name: strPtr("")}.Validate(), "name")
	})

	t.Run("apply copies only supplied fields", func(t *testing.T) {
		t.Parallel()
		ing := Ingredient{Name: "Salt", Unit: "g"}
		Patch{Unit: strPtr("kg")}.Apply(&ing)
		if ing.Name != "Salt" {
			t.Errorf("Name = %q, want %q", ing.Name, "Salt")
		}
		if ing.Unit != "kg" {
			t.Errorf("Unit = %q, want %q", ing.Unit, "kg")
		}
	})
}
