package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ADJUSTMENT, quantity es un delta con signo.
type RegisterMovementRequest struct {
	IngredientID  string           `json:"ingredient_id"`
	Type          string           `json:"type"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitCost      *decimal.Decimal `json:"unit_cost,omitempty"`
	ReferenceType string           `json:"reference_type,omitempty"`
	ReferenceID   string           `json:"reference_id,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// MovementResponse registro del ledger.
type MovementResponse struct {
	ID            string              `json:"id"`
	IngredientID  string              `json:"ingredient_id"`
	Type          string              `json:"type"`
	Quantity      decimal.Decimal     `json:"quantity"`
	ReferenceType string              `json:"reference_type"`
	ReferenceID   string              `json:"reference_id,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	UnitCost      decimal.NullDecimal `json:"unit_cost"`
	PreviousStock decimal.Decimal     `json:"previous_stock"`
	NewStock      decimal.Decimal     `json:"new_stock"`
	CreatedBy     string              `json:"created_by,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// CreateIngredientRequest body para POST /api/ingredients.
type CreateIngredientRequest struct {
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	InitialStock decimal.Decimal  `json:"initial_stock"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit,omitempty"`
	IsCompound   bool             `json:"is_compound"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Unit         string              `json:"unit"`
	CurrentStock decimal.Decimal     `json:"current_stock"`
	MinStock     decimal.Decimal     `json:"min_stock"`
	CostPerUnit  decimal.NullDecimal `json:"cost_per_unit"`
	IsCompound   bool                `json:"is_compound"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Estados derivados de stock (no se persisten).
const (
	StockStatusSufficient = "sufficient"
	StockStatusLow        = "low"
	StockStatusDepleted   = "depleted"
)

// IngredientStatusDTO estado de stock de un ingrediente.
// BlockedProducts lista los productos con 0 unidades cuyo limitante es este ingrediente.
type IngredientStatusDTO struct {
	IngredientID    string          `json:"ingredient_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	MinStock        decimal.Decimal `json:"min_stock"`
	Status          string          `json:"status"`
	BlockedProducts []string        `json:"blocked_products,omitempty"`
}
