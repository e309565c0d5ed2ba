package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa el costo promedio ponderado de un ingrediente comprado.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el costo actual es desconocido o el stock previo no es positivo, el costo de la entrada lo reemplaza.
func CostCalculator(stockActual decimal.Decimal, costoActual decimal.NullDecimal, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	if !costoActual.Valid || stockActual.LessThanOrEqual(decimal.Zero) {
		return costoEntrada
	}
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return costoEntrada
	}
	num := stockActual.Mul(costoActual.Decimal).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}
