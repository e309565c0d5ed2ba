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

type fakeSheets struct{ batchID string }

func (s *fakeSheets) ProductionSheet(b *entity.ProductionBatch) ([]byte, error) {
	s.batchID = b.ID
	return []byte("%PDF-1.4"), nil
}

func TestProduce_ConsumeBasesYSumaCompuesto(t *testing.T) {
	f := newFixture(t)
	f.seedSyrup()
	uc := kitchen.NewProductionUseCase(f.store, f.settings, nil, f.log)

	batch, err := uc.Produce(f.ctx, kitchen.ProductionInput{
		RestaurantID: rid, UserID: "chef", CompoundIngredientID: "syrup", Quantity: d("2"),
	})
	require.NoError(t, err)

	requireDec(t, "500", f.stock("pineapple"))
	requireDec(t, "600", f.stock("sugar"))
	requireDec(t, "2", f.stock("syrup"))

	require.Len(t, batch.Lines, 2)
	assert.Equal(t, "pineapple", batch.Lines[0].IngredientID)
	requireDec(t, "1000", batch.Lines[0].Quantity)
	requireDec(t, "400", batch.Lines[1].Quantity)
	require.True(t, batch.BatchCost.Valid)
	requireDec(t, "4.8", batch.BatchCost.Decimal)

	syrup := f.getIngredient("syrup")
	require.True(t, syrup.CostPerUnit.Valid)
	requireDec(t, "2.4", syrup.CostPerUnit.Decimal)

	for _, id := range []string{"pineapple", "sugar", "syrup"} {
		movs := f.movements(id)
		require.Len(t, movs, 1, id)
		assert.Equal(t, entity.ReferenceInternalProduction, movs[0].ReferenceType)
		assert.Equal(t, batch.ID, movs[0].ReferenceID)
	}
	assert.Equal(t, entity.MovementTypeOUT, f.movements("sugar")[0].Type)
	assert.Equal(t, entity.MovementTypeIN, f.movements("syrup")[0].Type)

	stored, err := uc.GetBatch(f.ctx, rid, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jarabe de piña", stored.CompoundName)
}

func TestProduce_FaltanteEsTodoONada(t *testing.T) {
	f := newFixture(t)
	f.seedSyrup()
	uc := kitchen.NewProductionUseCase(f.store, f.settings, nil, f.log)

	// 4 l requieren 2000 g de piña (hay 1500) y 800 g de azúcar (hay 1000)
	_, err := uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "syrup", Quantity: d("4")})
	require.Error(t, err)
	var ie *domain.InsufficientIngredientsError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Shortfalls, 1)
	assert.Equal(t, "Piña", ie.Shortfalls[0].Name)
	requireDec(t, "2000", ie.Shortfalls[0].Required)
	requireDec(t, "1500", ie.Shortfalls[0].Available)

	requireDec(t, "1000", f.stock("sugar"))
	requireDec(t, "1500", f.stock("pineapple"))
	requireDec(t, "0", f.stock("syrup"))
	assert.Empty(t, f.movements("sugar"))
}

func TestProduce_ReuneTodosLosFaltantes(t *testing.T) {
	f := newFixture(t)
	f.seedSyrup()
	uc := kitchen.NewProductionUseCase(f.store, f.settings, nil, f.log)

	_, err := uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "syrup", Quantity: d("6")})
	var ie *domain.InsufficientIngredientsError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Shortfalls, 2)
	assert.Equal(t, "pineapple", ie.Shortfalls[0].IngredientID)
	assert.Equal(t, "sugar", ie.Shortfalls[1].IngredientID)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestProduce_CostoBaseDesconocidoDejaLoteSinCosto(t *testing.T) {
	f := newFixture(t)
	f.ingredient("bones", "Huesos", entity.UnitKilogram, "4", "0", "", false)
	f.ingredient("broth", "Caldo", entity.UnitLiter, "0", "0", "", true)
	f.compound("broth", "2", "bones", "1")
	uc := kitchen.NewProductionUseCase(f.store, f.settings, nil, f.log)

	batch, err := uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "broth", Quantity: d("3")})
	require.NoError(t, err)
	assert.False(t, batch.BatchCost.Valid)
	requireDec(t, "2.5", f.stock("bones"))
	requireDec(t, "3", f.stock("broth"))
	assert.False(t, f.getIngredient("broth").CostPerUnit.Valid)
}

func TestProduce_Rechazos(t *testing.T) {
	f := newFixture(t)
	f.seedSyrup()
	f.ingredient("empty", "Sin receta", entity.UnitLiter, "0", "0", "", true)
	f.ingredient("a", "Base A", entity.UnitGram, "10", "0", "", true)
	f.ingredient("b", "Base B", entity.UnitGram, "10", "0", "", true)
	f.compound("a", "1", "b", "1")
	f.compound("b", "1", "a", "1")
	uc := kitchen.NewProductionUseCase(f.store, f.settings, nil, f.log)

	_, err := uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "sugar", Quantity: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotCompound))

	_, err = uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "empty", Quantity: d("1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))

	_, err = uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "syrup", Quantity: d("0")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "a", Quantity: d("1")})
	assert.True(t, errors.Is(err, domain.ErrCyclicRecipe))
	requireDec(t, "10", f.stock("b"))
}

func TestSheet_UsaElGenerador(t *testing.T) {
	f := newFixture(t)
	f.seedSyrup()
	sheets := &fakeSheets{}
	uc := kitchen.NewProductionUseCase(f.store, f.settings, sheets, f.log)

	batch, err := uc.Produce(f.ctx, kitchen.ProductionInput{RestaurantID: rid, CompoundIngredientID: "syrup", Quantity: d("1")})
	require.NoError(t, err)
	pdf, err := uc.Sheet(f.ctx, rid, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, sheets.batchID)
	assert.NotEmpty(t, pdf)

	_, err = uc.Sheet(f.ctx, rid, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
