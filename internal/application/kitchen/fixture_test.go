package kitchen_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/infrastructure/memory"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

const rid = "rest-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, d(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

// kitchenFixture store en memoria con datos sembrados directamente en los repositorios.
type kitchenFixture struct {
	t        *testing.T
	ctx      context.Context
	store    *memory.Store
	settings kitchen.Settings
	log      *logger.Logger
}

func newFixture(t *testing.T) *kitchenFixture {
	return &kitchenFixture{
		t:        t,
		ctx:      context.Background(),
		store:    memory.NewStore(),
		settings: kitchen.Settings{CatalogConcurrency: 2},
		log:      logger.Nop(),
	}
}

func (f *kitchenFixture) run(fn func(repos kitchen.Repos) error) {
	f.t.Helper()
	require.NoError(f.t, f.store.Run(f.ctx, fn))
}

func (f *kitchenFixture) ingredient(id, name string, unit entity.Unit, stock, minStock, cost string, compound bool) {
	ing := &entity.Ingredient{
		ID: id, RestaurantID: rid, Name: name, Unit: unit,
		CurrentStock: d(stock), MinStock: d(minStock),
		IsCompound: compound, IsActive: true, CreatedAt: time.Now(),
	}
	if cost != "" {
		ing.CostPerUnit = decimal.NewNullDecimal(d(cost))
	}
	f.run(func(repos kitchen.Repos) error { return repos.Ingredients.Create(f.ctx, ing) })
}

func (f *kitchenFixture) product(id, name string) {
	p := &entity.Product{ID: id, RestaurantID: rid, Name: name, IsActive: true}
	f.run(func(repos kitchen.Repos) error { return repos.Products.Create(f.ctx, p) })
}

// recipe recibe pares ingrediente/cantidad en orden de receta.
func (f *kitchenFixture) recipe(productID string, pairs ...string) {
	var edges []entity.RecipeEdge
	for i := 0; i+1 < len(pairs); i += 2 {
		edges = append(edges, entity.RecipeEdge{ProductID: productID, IngredientID: pairs[i], QuantityNeeded: d(pairs[i+1]), Position: i / 2})
	}
	f.run(func(repos kitchen.Repos) error {
		return repos.Recipes.ReplaceProductRecipe(f.ctx, rid, productID, edges)
	})
}

// compound escribe la receta sin validarla (permite sembrar ciclos).
func (f *kitchenFixture) compound(compoundID, yield string, pairs ...string) {
	var edges []entity.CompoundRecipeEdge
	for i := 0; i+1 < len(pairs); i += 2 {
		edges = append(edges, entity.CompoundRecipeEdge{
			CompoundIngredientID: compoundID, BaseIngredientID: pairs[i],
			QuantityNeeded: d(pairs[i+1]), YieldAmount: d(yield), Position: i / 2,
		})
	}
	f.run(func(repos kitchen.Repos) error {
		return repos.Recipes.ReplaceCompoundRecipe(f.ctx, rid, compoundID, edges)
	})
}

func (f *kitchenFixture) stock(id string) decimal.Decimal {
	f.t.Helper()
	var ing *entity.Ingredient
	require.NoError(f.t, f.store.RunReadOnly(f.ctx, func(repos kitchen.Repos) error {
		var err error
		ing, err = repos.Ingredients.GetByID(f.ctx, rid, id)
		return err
	}))
	require.NotNil(f.t, ing)
	return ing.CurrentStock
}

func (f *kitchenFixture) getIngredient(id string) *entity.Ingredient {
	f.t.Helper()
	var ing *entity.Ingredient
	require.NoError(f.t, f.store.RunReadOnly(f.ctx, func(repos kitchen.Repos) error {
		var err error
		ing, err = repos.Ingredients.GetByID(f.ctx, rid, id)
		return err
	}))
	require.NotNil(f.t, ing)
	return ing
}

func (f *kitchenFixture) movements(id string) []*entity.IngredientMovement {
	f.t.Helper()
	var out []*entity.IngredientMovement
	require.NoError(f.t, f.store.RunReadOnly(f.ctx, func(repos kitchen.Repos) error {
		var err error
		out, err = repos.Movements.ListByIngredient(f.ctx, rid, id, 100, 0)
		return err
	}))
	return out
}

// seedSyrup: Jarabe de piña (compuesto, 1 l por lote de 500 g de piña + 200 g de azúcar).
func (f *kitchenFixture) seedSyrup() {
	f.ingredient("pineapple", "Piña", entity.UnitGram, "1500", "0", "0.004", false)
	f.ingredient("sugar", "Azúcar", entity.UnitGram, "1000", "0", "0.002", false)
	f.ingredient("syrup", "Jarabe de piña", entity.UnitLiter, "0", "0", "", true)
	f.compound("syrup", "1", "pineapple", "500", "sugar", "200")
}
