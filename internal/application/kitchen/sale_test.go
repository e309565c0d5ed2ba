package kitchen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

func TestRecordSale_ConsumeLineasDirectas(t *testing.T) {
	f := newFixture(t)
	f.ingredient("flour", "Harina", entity.UnitGram, "1000", "0", "", false)
	f.ingredient("salt", "Sal", entity.UnitGram, "100", "0", "", false)
	f.product("bread", "Pan")
	f.recipe("bread", "flour", "250", "salt", "5")
	uc := kitchen.NewSaleUseCase(f.store, f.settings, f.log)

	movs, err := uc.RecordSale(f.ctx, kitchen.SaleInput{RestaurantID: rid, ProductID: "bread", Quantity: 3, ReferenceID: "order-9"})
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.ReferenceSale, movs[0].ReferenceType)
	assert.Equal(t, "order-9", movs[0].ReferenceID)
	requireDec(t, "750", movs[0].Quantity)
	requireDec(t, "250", f.stock("flour"))
	requireDec(t, "85", f.stock("salt"))
}

func TestRecordSale_FaltanteNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	f.ingredient("flour", "Harina", entity.UnitGram, "250", "0", "", false)
	f.ingredient("salt", "Sal", entity.UnitGram, "100", "0", "", false)
	f.product("bread", "Pan")
	f.recipe("bread", "salt", "5", "flour", "250")
	uc := kitchen.NewSaleUseCase(f.store, f.settings, f.log)

	_, err := uc.RecordSale(f.ctx, kitchen.SaleInput{RestaurantID: rid, ProductID: "bread", Quantity: 2})
	var ie *domain.InsufficientIngredientsError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Shortfalls, 1)
	requireDec(t, "500", ie.Shortfalls[0].Required)
	requireDec(t, "100", f.stock("salt"))
	assert.Empty(t, f.movements("salt"))
}

func TestRecordSale_Validaciones(t *testing.T) {
	f := newFixture(t)
	f.product("water", "Agua")
	uc := kitchen.NewSaleUseCase(f.store, f.settings, f.log)

	_, err := uc.RecordSale(f.ctx, kitchen.SaleInput{RestaurantID: rid, ProductID: "water", Quantity: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.RecordSale(f.ctx, kitchen.SaleInput{RestaurantID: rid, ProductID: "nope", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	movs, err := uc.RecordSale(f.ctx, kitchen.SaleInput{RestaurantID: rid, ProductID: "water", Quantity: 1})
	require.NoError(t, err)
	assert.Empty(t, movs)
}
