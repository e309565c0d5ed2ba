package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
)

// AvailabilityLineDTO detalle por ingrediente directo.
type AvailabilityLineDTO struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	IsCompound     bool            `json:"is_compound"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
	EffectiveStock decimal.Decimal `json:"effective_stock"`
	Units          int64           `json:"units"`
}

// AvailabilityResponse reporte de disponibilidad. MaxUnits es null si el producto no tiene restricción.
// Error solo se llena en el catálogo, cuando la receta de ese producto es inválida.
type AvailabilityResponse struct {
	ProductID              string                `json:"product_id"`
	ProductName            string                `json:"product_name"`
	RequestedQuantity      int64                 `json:"requested_quantity"`
	MaxUnits               *int64                `json:"max_units"`
	LimitingIngredientID   *string               `json:"limiting_ingredient_id"`
	LimitingIngredientName *string               `json:"limiting_ingredient_name"`
	IsAvailable            bool                  `json:"is_available"`
	Lines                  []AvailabilityLineDTO `json:"lines,omitempty"`
	Error                  string                `json:"error,omitempty"`
}

// CostLineDTO costo por ingrediente directo.
type CostLineDTO struct {
	IngredientID   string              `json:"ingredient_id"`
	IngredientName string              `json:"ingredient_name"`
	QuantityNeeded decimal.Decimal     `json:"quantity_needed"`
	UnitCost       decimal.NullDecimal `json:"unit_cost"`
	Subtotal       decimal.NullDecimal `json:"subtotal"`
}

// CostResponse costo unitario; unit_cost null = desconocido.
type CostResponse struct {
	ProductID              string              `json:"product_id"`
	ProductName            string              `json:"product_name"`
	UnitCost               decimal.NullDecimal `json:"unit_cost"`
	CostKnown              bool                `json:"cost_known"`
	Lines                  []CostLineDTO       `json:"lines"`
	UnknownCostIngredients []string            `json:"unknown_cost_ingredients,omitempty"`
}

// ProductionRequest body para POST /api/production.
type ProductionRequest struct {
	CompoundIngredientID string          `json:"compound_ingredient_id"`
	Quantity             decimal.Decimal `json:"quantity"`
	Notes                string          `json:"notes,omitempty"`
}

// ProductionLineDTO consumo de un ingrediente base.
type ProductionLineDTO struct {
	IngredientID string              `json:"ingredient_id"`
	Name         string              `json:"name"`
	Unit         string              `json:"unit"`
	Quantity     decimal.Decimal     `json:"quantity"`
	UnitCost     decimal.NullDecimal `json:"unit_cost"`
}

// ProductionBatchResponse lote producido.
type ProductionBatchResponse struct {
	ID                   string              `json:"id"`
	CompoundIngredientID string              `json:"compound_ingredient_id"`
	CompoundName         string              `json:"compound_name"`
	Unit                 string              `json:"unit"`
	Quantity             decimal.Decimal     `json:"quantity"`
	BatchCost            decimal.NullDecimal `json:"batch_cost"`
	Lines                []ProductionLineDTO `json:"lines"`
	Notes                string              `json:"notes,omitempty"`
	CreatedBy            string              `json:"created_by,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
}

// SaleRequest body para POST /api/sales.
type SaleRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    int64  `json:"quantity"`
	ReferenceID string `json:"reference_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// SaleResponse movimientos generados por la venta.
type SaleResponse struct {
	ProductID string             `json:"product_id"`
	Quantity  int64              `json:"quantity"`
	Movements []MovementResponse `json:"movements"`
}

// ShortfallsOf extrae la lista de faltantes de un error de dominio, si la tiene.
func ShortfallsOf(err error) []domain.Shortfall {
	var ie *domain.InsufficientIngredientsError
	if errors.As(err, &ie) {
		return ie.Shortfalls
	}
	var se *domain.InsufficientStockError
	if errors.As(err, &se) {
		return []domain.Shortfall{{IngredientID: se.IngredientID, Name: se.Name, Required: se.Requested, Available: se.Available}}
	}
	return nil
}
