package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima o un ingrediente compuesto (preparado en cocina).
// CostPerUnit inválido (Valid=false) significa costo desconocido.
type Ingredient struct {
	ID           string
	RestaurantID string
	Name         string
	Unit         Unit
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal // solo para alertas, nunca es un piso obligatorio
	CostPerUnit  decimal.NullDecimal
	IsCompound   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLow indica stock en o por debajo del mínimo.
func (i *Ingredient) IsLow() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}
