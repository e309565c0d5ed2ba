package entity

import (
	"github.com/shopspring/decimal"
)

// Unit unidad de medida de un ingrediente.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "unit"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
)

type dimension int

const (
	dimMass dimension = iota + 1
	dimVolume
	dimCount
)

// factor de cada unidad respecto a la unidad base de su dimensión (g, ml, unit).
var unitFactors = map[Unit]struct {
	dim    dimension
	factor decimal.Decimal
}{
	UnitGram:       {dimMass, decimal.NewFromInt(1)},
	UnitKilogram:   {dimMass, decimal.NewFromInt(1000)},
	UnitOunce:      {dimMass, decimal.RequireFromString("28.349523125")},
	UnitPound:      {dimMass, decimal.RequireFromString("453.59237")},
	UnitMilliliter: {dimVolume, decimal.NewFromInt(1)},
	UnitLiter:      {dimVolume, decimal.NewFromInt(1000)},
	UnitPiece:      {dimCount, decimal.NewFromInt(1)},
}

// Valid indica si la unidad pertenece al conjunto soportado.
func (u Unit) Valid() bool {
	_, ok := unitFactors[u]
	return ok
}

// ConvertQuantity expresa qty (en from) en la unidad to.
// Solo convierte dentro de la misma dimensión (masa, volumen, conteo).
func ConvertQuantity(qty decimal.Decimal, from, to Unit) (decimal.Decimal, bool) {
	if from == "" || from == to {
		return qty, true
	}
	f, okF := unitFactors[from]
	t, okT := unitFactors[to]
	if !okF || !okT || f.dim != t.dim {
		return decimal.Zero, false
	}
	return qty.Mul(f.factor).Div(t.factor), true
}
