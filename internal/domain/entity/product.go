package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible de la carta. Su receta vive en RecipeEdge.
type Product struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
