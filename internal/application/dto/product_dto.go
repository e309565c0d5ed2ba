package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto de la carta.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RecipeLineRequest línea de receta de producto.
type RecipeLineRequest struct {
	IngredientID   string          `json:"ingredient_id"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}

// SetRecipeRequest body para PUT /api/products/:id/recipe (reemplaza la receta completa).
type SetRecipeRequest struct {
	Lines []RecipeLineRequest `json:"lines"`
}

// CompoundRecipeLineRequest línea de receta de un ingrediente compuesto.
type CompoundRecipeLineRequest struct {
	BaseIngredientID string          `json:"base_ingredient_id"`
	QuantityNeeded   decimal.Decimal `json:"quantity_needed"`
	Unit             string          `json:"unit,omitempty"`
}

// SetCompoundRecipeRequest body para PUT /api/ingredients/:id/recipe.
// YieldAmount es lo que rinde un lote con las cantidades indicadas.
type SetCompoundRecipeRequest struct {
	YieldAmount decimal.Decimal             `json:"yield_amount"`
	Lines       []CompoundRecipeLineRequest `json:"lines"`
}
