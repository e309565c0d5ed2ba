package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de ingredientes.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (delta con signo)
)

// Tipos de referencia (origen del movimiento).
const (
	ReferenceInternalProduction = "INTERNAL_PRODUCTION"
	ReferenceSale               = "SALE"
	ReferenceManual             = "MANUAL"
	ReferencePurchase           = "PURCHASE"
	ReferenceInitialStock       = "INITIAL_STOCK"
)

// IngredientMovement registro inmutable del ledger de ingredientes.
// Quantity es la magnitud para IN/OUT y el delta con signo para ADJUSTMENT.
type IngredientMovement struct {
	ID            string
	RestaurantID  string
	IngredientID  string
	Type          string
	Quantity      decimal.Decimal
	ReferenceType string
	ReferenceID   string
	Notes         string
	UnitCost      decimal.NullDecimal
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	CreatedBy     string
	CreatedAt     time.Time
}

// Delta devuelve el cambio de stock con signo que representa el movimiento.
func (m *IngredientMovement) Delta() decimal.Decimal {
	if m.Type == MovementTypeOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
