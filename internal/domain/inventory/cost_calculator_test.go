package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Recetario-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCostCalculator_PromedioPonderado(t *testing.T) {
	// 1000 g a 0.002 + 1000 g a 0.004 => 0.003
	got := inventory.CostCalculator(d("1000"), decimal.NewNullDecimal(d("0.002")), d("1000"), d("0.004"))
	assert.True(t, got.Equal(d("0.003")), "got %s", got)
}

func TestCostCalculator_CostoDesconocidoTomaEntrada(t *testing.T) {
	got := inventory.CostCalculator(d("500"), decimal.NullDecimal{}, d("100"), d("1.5"))
	assert.True(t, got.Equal(d("1.5")))
}

func TestCostCalculator_SinStockPrevio(t *testing.T) {
	got := inventory.CostCalculator(decimal.Zero, decimal.NewNullDecimal(d("9")), d("10"), d("2"))
	assert.True(t, got.Equal(d("2")))
}
