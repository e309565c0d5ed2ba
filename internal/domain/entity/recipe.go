package entity

import "github.com/shopspring/decimal"

// RecipeEdge línea de receta producto -> ingrediente.
// QuantityNeeded está en la unidad del ingrediente. Un producto referencia cada ingrediente una sola vez.
type RecipeEdge struct {
	ProductID      string
	IngredientID   string
	QuantityNeeded decimal.Decimal
	Position       int
}

// CompoundRecipeEdge línea de receta ingrediente compuesto -> ingrediente base.
// Un lote consume QuantityNeeded (en Unit) de cada base y produce YieldAmount del compuesto.
type CompoundRecipeEdge struct {
	CompoundIngredientID string
	BaseIngredientID     string
	QuantityNeeded       decimal.Decimal
	Unit                 Unit // vacío = unidad del ingrediente base
	YieldAmount          decimal.Decimal
	Position             int
}
