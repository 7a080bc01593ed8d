package store

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/jsamuelsen11/recipebox/internal/domain/ingredient"
	"github.com/jsamuelsen11/recipebox/internal/domain/recipe"
)

type ingredientRow struct {
	bun.BaseModel `bun:"table:ingredients,alias:i"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull,type:varchar(100)"`
	Unit      string    `bun:"unit,notnull,type:varchar(50)"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type recipeRow struct {
	bun.BaseModel `bun:"table:recipes,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull,type:varchar(200)"`
	Description string    `bun:"description,notnull,type:text"`
	CreatedBy   string    `bun:"created_by,notnull,type:varchar(150)"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`

	// Filled by a correlated subquery on every read.
	IngredientCount int `bun:"ingredient_count,scanonly"`
}

type associationRow struct {
	bun.BaseModel `bun:"table:recipe_ingredients,alias:ri"`

	ID           int64     `bun:"id,pk,autoincrement"`
	RecipeID     int64     `bun:"recipe_id,notnull,unique:recipe_ingredient_uniq"`
	IngredientID int64     `bun:"ingredient_id,notnull,unique:recipe_ingredient_uniq"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`

	// SQLite keeps whole numbers in a NUMERIC column as INTEGER; decimal
	// scans INTEGER, REAL and TEXT alike.
	Quantity decimal.Decimal `bun:"quantity,notnull,type:decimal(10,2)"`

	Ingredient *ingredientRow `bun:"rel:belongs-to,join:ingredient_id=id"`
}

func (r *ingredientRow) toDomain() ingredient.Ingredient {
	return ingredient.Ingredient{
		ID:        r.ID,
		Name:      r.Name,
		Unit:      r.Unit,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *recipeRow) toDomain() recipe.Recipe {
	return recipe.Recipe{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		CreatedBy:       r.CreatedBy,
		IngredientCount: r.IngredientCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *associationRow) toDomain() recipe.Association {
	a := recipe.Association{
		ID:           r.ID,
		RecipeID:     r.RecipeID,
		IngredientID: r.IngredientID,
		Quantity:     recipe.RoundQuantity(r.Quantity.InexactFloat64()),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Ingredient != nil {
		ing := r.Ingredient.toDomain()
		a.Ingredient = &ing
	}
	return a
}

// columnQuantity is q rounded to the column's two decimal places.
func columnQuantity(q float64) decimal.Decimal {
	return decimal.NewFromFloat(q).Round(2)
}
