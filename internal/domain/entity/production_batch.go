package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch registro de una producción interna de un ingrediente compuesto.
type ProductionBatch struct {
	ID                   string
	RestaurantID         string
	CompoundIngredientID string
	CompoundName         string
	Unit                 Unit
	Quantity             decimal.Decimal
	BatchCost            decimal.NullDecimal // inválido si algún insumo no tiene costo
	Lines                []ProductionBatchLine
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
}

// ProductionBatchLine consumo de un ingrediente base dentro del lote.
type ProductionBatchLine struct {
	IngredientID string
	Name         string
	Unit         Unit
	Quantity     decimal.Decimal
	UnitCost     decimal.NullDecimal
}
