package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

// newTestStore opens a migrated SQLite store in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open(context.Background(), &config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         filepath.Join(t.TempDir(), "recipebox.db"),
		AutoMigrate: true,
	}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func mustIngredient(t *testing.T, st *Store, name, unit string) *ingredient.Ingredient {
	t.Helper()
	ing, err := st.CreateIngredient(context.Background(), &ingredient.Ingredient{Name: name, Unit: unit})
	if err != nil {
		t.Fatalf("CreateIngredient(%q) error = %v", name, err)
	}
	return ing
}

func mustRecipe(t *testing.T, st *Store, name string) *recipe.Recipe {
	t.Helper()
	r, err := st.CreateRecipe(context.Background(), &recipe.Recipe{Name: name, Description: "", CreatedBy: "chef"})
	if err != nil {
		t.Fatalf("CreateRecipe(%q) error = %v", name, err)
	}
	return r
}

func names(ings []ingredient.Ingredient) []string {
	out := make([]string, len(ings))
	for i := range ings {
		out[i] = ings[i].Name
	}
	return out
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), &config.DatabaseConfig{Driver: "oracle", DSN: "x"}, nil)
	if err == nil {
		t.Fatal("Open(oracle) error = nil, want error")
	}
}

func TestSqliteDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "app.db", want: "app.db?" + sqlitePragmas},
		{in: "app.db?mode=rwc", want: "app.db?mode=rwc&" + sqlitePragmas},
		{in: "app.db?_pragma=foreign_keys(1)", want: "app.db?_pragma=foreign_keys(1)"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if st.Name() != "database" {
		t.Errorf("Name() = %q, want %q", st.Name(), "database")
	}
	if err := st.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestStore_CreateSchemaIsIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.CreateSchema(context.Background()); err != nil {
		t.Fatalf("second CreateSchema() error = %v", err)
	}
}

func TestIngredients_CRUD(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	created := mustIngredient(t, st, "Flour", "g")
	if created.ID == 0 {
		t.Fatal("CreateIngredient().ID = 0, want assigned id")
	}

	got, err := st.GetIngredient(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetIngredient() error = %v", err)
	}
	if got.Name != "Flour" || got.Unit != "g" {
		t.Errorf("GetIngredient() = %+v, want Flour/g", got)
	}

	updated, err := st.UpdateIngredient(ctx, created.ID, ingredient.Patch{Unit: strPtr("kg")})
	if err != nil {
		t.Fatalf("UpdateIngredient() error = %v", err)
	}
	if updated.Name != "Flour" || updated.Unit != "kg" {
		t.Errorf("UpdateIngredient() = %+v, want Flour/kg", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want >= %v", updated.UpdatedAt, created.UpdatedAt)
	}

	if err := st.DeleteIngredient(ctx, created.ID); err != nil {
		t.Fatalf("DeleteIngredient() error = %v", err)
	}
	if _, err := st.GetIngredient(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetIngredient() after delete error = %v, want ErrNotFound", err)
	}
}

func TestIngredients_MissingIDs(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.GetIngredient(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetIngredient(404) error = %v, want ErrNotFound", err)
	}
	if _, err := st.UpdateIngredient(ctx, 404, ingredient.Patch{Name: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateIngredient(404) error = %v, want ErrNotFound", err)
	}
	if err := st.DeleteIngredient(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteIngredient(404) error = %v, want ErrNotFound", err)
	}
}

func TestIngredients_DuplicateNamesAllowed(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	a := mustIngredient(t, st, "Salt", "g")
	b := mustIngredient(t, st, "Salt", "tsp")
	if a.ID == b.ID {
		t.Errorf("duplicate names got the same id %d", a.ID)
	}
}

func TestListIngredients_NameSearch(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	mustIngredient(t, st, "Sugar", "g")
	mustIngredient(t, st, "Salt", "g")
	mustIngredient(t, st, "Pepper", "g")

	tests := []struct {
		query string
		want  []string
	}{
		{query: "sal", want: []string{"Salt"}},
		{query: "SAL", want: []string{"Salt"}},
		{query: "alt", want: []string{"Salt"}},
		{query: "xyz", want: []string{}},
		{query: "", want: []string{"Pepper", "Salt", "Sugar"}},
	}

	for _, tt := range tests {
		got, err := st.ListIngredients(ctx, ingredient.Filter{Name: tt.query})
		if err != nil {
			t.Fatalf("ListIngredients(%q) error = %v", tt.query, err)
		}
		if fmt.Sprint(names(got)) != fmt.Sprint(tt.want) {
			t.Errorf("ListIngredients(%q) = %v, want %v", tt.query, names(got), tt.want)
		}
		if got == nil {
			t.Errorf("ListIngredients(%q) = nil, want empty slice", tt.query)
		}
	}
}

func TestListIngredients_EscapesWildcards(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	mustIngredient(t, st, "100% juice", "ml")
	mustIngredient(t, st, "1000 island", "ml")
	mustIngredient(t, st, "a_b", "g")
	mustIngredient(t, st, "axb", "g")

	got, err := st.ListIngredients(ctx, ingredient.Filter{Name: "0%"})
	if err != nil {
		t.Fatalf("ListIngredients() error = %v", err)
	}
	if fmt.Sprint(names(got)) != "[100% juice]" {
		t.Errorf("ListIngredients(0%%) = %v, want [100%% juice]", names(got))
	}

	got, err = st.ListIngredients(ctx, ingredient.Filter{Name: "a_b"})
	if err != nil {
		t.Fatalf("ListIngredients() error = %v", err)
	}
	if fmt.Sprint(names(got)) != "[a_b]" {
		t.Errorf("ListIngredients(a_b) = %v, want [a_b]", names(got))
	}
}

func TestListIngredients_Pagination(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		mustIngredient(t, st, fmt.Sprintf("ing-%02d", i), "g")
	}

	tests := []struct {
		name      string
		page      domain.Page
		wantLen   int
		wantFirst string
	}{
		{name: "first page", page: domain.Page{Limit: intPtr(10), Offset: intPtr(0)}, wantLen: 10, wantFirst: "ing-01"},
		{name: "offset only", page: domain.Page{Offset: intPtr(10)}, wantLen: 5, wantFirst: "ing-11"},
		{name: "second page", page: domain.Page{Limit: intPtr(10), Offset: intPtr(10)}, wantLen: 5, wantFirst: "ing-11"},
		{name: "zero limit", page: domain.Page{Limit: intPtr(0)}, wantLen: 0},
		{name: "offset past end", page: domain.Page{Offset: intPtr(20)}, wantLen: 0},
		{name: "unbounded", page: domain.Page{}, wantLen: 15, wantFirst: "ing-01"},
	}

	for _, tt := range tests {
		got, err := st.ListIngredients(ctx, ingredient.Filter{Page: tt.page})
		if err != nil {
			t.Fatalf("%s: ListIngredients() error = %v", tt.name, err)
		}
		if len(got) != tt.wantLen {
			t.Errorf("%s: len = %d, want %d", tt.name, len(got), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && got[0].Name != tt.wantFirst {
			t.Errorf("%s: first = %q, want %q", tt.name, got[0].Name, tt.wantFirst)
		}
	}
}

func TestRecipes_CRUDAndOrdering(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	first := mustRecipe(t, st, "Pancakes")
	second := mustRecipe(t, st, "Omelette")
	third := mustRecipe(t, st, "Pasta Salad")

	list, err := st.ListRecipes(ctx, recipe.Filter{})
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListRecipes() len = %d, want 3", len(list))
	}
	wantOrder := []int64{third.ID, second.ID, first.ID}
	for i, r := range list {
		if r.ID != wantOrder[i] {
			t.Errorf("ListRecipes()[%d].ID = %d, want %d (newest first)", i, r.ID, wantOrder[i])
		}
	}

	found, err := st.ListRecipes(ctx, recipe.Filter{Name: "PAS"})
	if err != nil {
		t.Fatalf("ListRecipes(PAS) error = %v", err)
	}
	if len(found) != 1 || found[0].ID != third.ID {
		t.Errorf("ListRecipes(PAS) = %+v, want only %q", found, third.Name)
	}

	updated, err := st.UpdateRecipe(ctx, first.ID, recipe.Patch{Description: strPtr("fluffy")})
	if err != nil {
		t.Fatalf("UpdateRecipe() error = %v", err)
	}
	if updated.Name != "Pancakes" || updated.Description != "fluffy" {
		t.Errorf("UpdateRecipe() = %+v, want Pancakes/fluffy", updated)
	}
	if updated.CreatedBy != "chef" {
		t.Errorf("CreatedBy = %q, want %q", updated.CreatedBy, "chef")
	}

	if err := st.DeleteRecipe(ctx, first.ID); err != nil {
		t.Fatalf("DeleteRecipe() error = %v", err)
	}
	if err := st.DeleteRecipe(ctx, first.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeleteRecipe() error = %v, want ErrNotFound", err)
	}
	if _, err := st.UpdateRecipe(ctx, first.ID, recipe.Patch{Name: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateRecipe(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestUpsertAssociation_IsIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")

	first, err := st.UpsertAssociation(ctx, r.ID, flour.ID, 2)
	if err != nil {
		t.Fatalf("first UpsertAssociation() error = %v", err)
	}
	second, err := st.UpsertAssociation(ctx, r.ID, flour.ID, 3.5)
	if err != nil {
		t.Fatalf("second UpsertAssociation() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert ID = %d, want %d (same row)", second.ID, first.ID)
	}
	if second.Quantity != 3.5 {
		t.Errorf("Quantity = %v, want 3.5", second.Quantity)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", first.CreatedAt, second.CreatedAt)
	}
	if second.Ingredient == nil || second.Ingredient.Name != "Flour" {
		t.Errorf("Ingredient = %+v, want Flour", second.Ingredient)
	}

	got, err := st.GetRecipe(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if got.IngredientCount != 1 {
		t.Errorf("IngredientCount = %d, want 1", got.IngredientCount)
	}
}

func TestAssociations_WholeNumberQuantities(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")
	salt := mustIngredient(t, st, "Salt", "g")

	got, err := st.UpsertAssociation(ctx, r.ID, flour.ID, 5)
	if err != nil {
		t.Fatalf("UpsertAssociation(5) error = %v", err)
	}
	if got.Quantity != 5 {
		t.Errorf("UpsertAssociation() Quantity = %v, want 5", got.Quantity)
	}

	replaced, err := st.ReplaceAssociations(ctx, r.ID, []int64{flour.ID, salt.ID}, 1)
	if err != nil {
		t.Fatalf("ReplaceAssociations() error = %v", err)
	}
	if len(replaced) != 2 {
		t.Fatalf("ReplaceAssociations() len = %d, want 2", len(replaced))
	}

	listed, err := st.ListAssociations(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListAssociations() error = %v", err)
	}
	for _, a := range listed {
		if a.Quantity != 1 {
			t.Errorf("ingredient %d Quantity = %v, want 1", a.IngredientID, a.Quantity)
		}
	}

	byRecipe, err := st.ListAssociationsFor(ctx, []int64{r.ID})
	if err != nil {
		t.Fatalf("ListAssociationsFor() error = %v", err)
	}
	if n := len(byRecipe[r.ID]); n != 2 {
		t.Errorf("ListAssociationsFor() len = %d, want 2", n)
	}

	got, err = st.UpsertAssociation(ctx, r.ID, salt.ID, 2.25)
	if err != nil {
		t.Fatalf("UpsertAssociation(2.25) error = %v", err)
	}
	if got.Quantity != 2.25 {
		t.Errorf("UpsertAssociation() Quantity = %v, want 2.25", got.Quantity)
	}
}

func TestUpsertAssociation_ConcurrentSamePair(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func(q float64) {
			defer wg.Done()
			if _, err := st.UpsertAssociation(ctx, r.ID, flour.ID, q); err != nil {
				errs <- err
			}
		}(float64(i + 1))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent UpsertAssociation() error = %v", err)
	}

	if _, err := st.UpsertAssociation(ctx, r.ID, flour.ID, 42.5); err != nil {
		t.Fatalf("final UpsertAssociation() error = %v", err)
	}

	listed, err := st.ListAssociations(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListAssociations() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListAssociations() len = %d, want 1", len(listed))
	}
	if listed[0].Quantity != 42.5 {
		t.Errorf("Quantity = %v, want 42.5 (last write)", listed[0].Quantity)
	}
}

func TestUpsertAssociation_MissingParents(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")

	if _, err := st.UpsertAssociation(ctx, 999, flour.ID, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpsertAssociation(missing recipe) error = %v, want ErrNotFound", err)
	}
	if _, err := st.UpsertAssociation(ctx, r.ID, 999, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpsertAssociation(missing ingredient) error = %v, want ErrNotFound", err)
	}
}

func TestRemoveAssociation_ReportsOutcome(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")
	if _, err := st.UpsertAssociation(ctx, r.ID, flour.ID, 1); err != nil {
		t.Fatalf("UpsertAssociation() error = %v", err)
	}

	removed, err := st.RemoveAssociation(ctx, r.ID, flour.ID)
	if err != nil || !removed {
		t.Errorf("first RemoveAssociation() = %v, %v; want true, nil", removed, err)
	}
	removed, err = st.RemoveAssociation(ctx, r.ID, flour.ID)
	if err != nil || removed {
		t.Errorf("second RemoveAssociation() = %v, %v; want false, nil", removed, err)
	}
}

func TestCascadeDeletes(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Soup")
	onion := mustIngredient(t, st, "Onion", "pc")
	leek := mustIngredient(t, st, "Leek", "pc")
	for _, id := range []int64{onion.ID, leek.ID} {
		if _, err := st.UpsertAssociation(ctx, r.ID, id, 1); err != nil {
			t.Fatalf("UpsertAssociation() error = %v", err)
		}
	}

	if err := st.DeleteIngredient(ctx, onion.ID); err != nil {
		t.Fatalf("DeleteIngredient() error = %v", err)
	}
	got, err := st.GetRecipe(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if got.IngredientCount != 1 {
		t.Errorf("IngredientCount after ingredient delete = %d, want 1", got.IngredientCount)
	}

	if err := st.DeleteRecipe(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRecipe() error = %v", err)
	}
	assocs, err := st.ListAssociations(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListAssociations() error = %v", err)
	}
	if len(assocs) != 0 {
		t.Errorf("ListAssociations() after recipe delete len = %d, want 0", len(assocs))
	}
	if _, err := st.GetIngredient(ctx, leek.ID); err != nil {
		t.Errorf("GetIngredient(leek) after recipe delete error = %v, want nil", err)
	}
}

func TestReplaceAssociations_IsDestructive(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Curry")
	rice := mustIngredient(t, st, "Rice", "g")
	chili := mustIngredient(t, st, "Chili", "pc")
	if _, err := st.UpsertAssociation(ctx, r.ID, rice.ID, 5); err != nil {
		t.Fatalf("UpsertAssociation() error = %v", err)
	}

	got, err := st.ReplaceAssociations(ctx, r.ID, []int64{rice.ID, chili.ID, chili.ID}, recipe.DefaultQuantity)
	if err != nil {
		t.Fatalf("ReplaceAssociations() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReplaceAssociations() len = %d, want 2 (duplicates collapsed)", len(got))
	}
	for _, a := range got {
		if a.Quantity != recipe.DefaultQuantity {
			t.Errorf("ingredient %d quantity = %v, want %v", a.IngredientID, a.Quantity, recipe.DefaultQuantity)
		}
	}
	// ordered by ingredient name
	if got[0].Ingredient.Name != "Chili" || got[1].Ingredient.Name != "Rice" {
		t.Errorf("order = %s, %s; want Chili, Rice", got[0].Ingredient.Name, got[1].Ingredient.Name)
	}

	cleared, err := st.ReplaceAssociations(ctx, r.ID, []int64{}, recipe.DefaultQuantity)
	if err != nil {
		t.Fatalf("ReplaceAssociations(empty) error = %v", err)
	}
	if len(cleared) != 0 {
		t.Errorf("ReplaceAssociations(empty) len = %d, want 0", len(cleared))
	}
}

func TestReplaceAssociations_RollsBackOnMissingIngredient(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Curry")
	rice := mustIngredient(t, st, "Rice", "g")
	if _, err := st.UpsertAssociation(ctx, r.ID, rice.ID, 5); err != nil {
		t.Fatalf("UpsertAssociation() error = %v", err)
	}

	_, err := st.ReplaceAssociations(ctx, r.ID, []int64{rice.ID, 999}, recipe.DefaultQuantity)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ReplaceAssociations() error = %v, want ErrNotFound", err)
	}

	assocs, err := st.ListAssociations(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListAssociations() error = %v", err)
	}
	if len(assocs) != 1 || assocs[0].Quantity != 5 {
		t.Errorf("composition after failed replace = %+v, want rice at 5", assocs)
	}

	if _, err := st.ReplaceAssociations(ctx, 999, nil, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ReplaceAssociations(missing recipe) error = %v, want ErrNotFound", err)
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	var createdID int64
	err := st.WithinTx(ctx, func(ctx context.Context) error {
		r, err := st.CreateRecipe(ctx, &recipe.Recipe{Name: "Ghost", CreatedBy: "chef"})
		if err != nil {
			return err
		}
		createdID = r.ID
		// nested call joins the outer transaction
		return st.WithinTx(ctx, func(context.Context) error { return boom })
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx() error = %v, want boom", err)
	}
	if _, err := st.GetRecipe(ctx, createdID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetRecipe(rolled back) error = %v, want ErrNotFound", err)
	}
}

func TestListRecipes_CountsAndBatchAssociations(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	a := mustRecipe(t, st, "A")
	b := mustRecipe(t, st, "B")
	x := mustIngredient(t, st, "X", "g")
	y := mustIngredient(t, st, "Y", "g")
	for _, id := range []int64{x.ID, y.ID} {
		if _, err := st.UpsertAssociation(ctx, a.ID, id, 1); err != nil {
			t.Fatalf("UpsertAssociation() error = %v", err)
		}
	}

	list, err := st.ListRecipes(ctx, recipe.Filter{})
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	counts := map[int64]int{}
	for _, r := range list {
		counts[r.ID] = r.IngredientCount
	}
	if counts[a.ID] != 2 || counts[b.ID] != 0 {
		t.Errorf("counts = %v, want %d:2 %d:0", counts, a.ID, b.ID)
	}

	byRecipe, err := st.ListAssociationsFor(ctx, []int64{a.ID, b.ID})
	if err != nil {
		t.Fatalf("ListAssociationsFor() error = %v", err)
	}
	if len(byRecipe[a.ID]) != 2 {
		t.Errorf("ListAssociationsFor()[a] len = %d, want 2", len(byRecipe[a.ID]))
	}
	if _, ok := byRecipe[b.ID]; ok {
		t.Errorf("ListAssociationsFor()[b] present, want absent")
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	r := mustRecipe(t, st, "Bread")
	flour := mustIngredient(t, st, "Flour", "g")

	now := timestamp()
	row := func() *associationRow {
		return &associationRow{RecipeID: r.ID, IngredientID: flour.ID, Quantity: decimal.NewFromInt(1), CreatedAt: now, UpdatedAt: now}
	}
	if _, err := st.db.NewInsert().Model(row()).Returning("NULL").Exec(ctx); err != nil {
		t.Fatalf("first insert error = %v", err)
	}
	_, err := st.db.NewInsert().Model(row()).Returning("NULL").Exec(ctx)
	if !isUniqueViolation(err) {
		t.Errorf("isUniqueViolation(%v) = false, want true", err)
	}

	bad := &associationRow{RecipeID: r.ID, IngredientID: 999, Quantity: decimal.NewFromInt(1), CreatedAt: now, UpdatedAt: now}
	_, err = st.db.NewInsert().Model(bad).Returning("NULL").Exec(ctx)
	if !isForeignKeyViolation(err) {
		t.Errorf("isForeignKeyViolation(%v) = false, want true", err)
	}
}
