package recipe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: grafo de recetas en memoria
// ──────────────────────────────────────────────────────────────────────────────

const rid = "rest-1"

type graph struct {
	ingredients map[string]*entity.Ingredient
	products    map[string][]entity.RecipeEdge
	compounds   map[string][]entity.CompoundRecipeEdge
}

func newGraph() *graph {
	return &graph{
		ingredients: map[string]*entity.Ingredient{},
		products:    map[string][]entity.RecipeEdge{},
		compounds:   map[string][]entity.CompoundRecipeEdge{},
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (g *graph) add(id, name string, unit entity.Unit, stock string, cost string, compound bool) *entity.Ingredient {
	ing := &entity.Ingredient{
		ID: id, RestaurantID: rid, Name: name, Unit: unit,
		CurrentStock: d(stock), IsCompound: compound, IsActive: true,
	}
	if cost != "" {
		ing.CostPerUnit = decimal.NewNullDecimal(d(cost))
	}
	g.ingredients[id] = ing
	return ing
}

func (g *graph) uses(productID, ingredientID, qty string) {
	g.products[productID] = append(g.products[productID], entity.RecipeEdge{
		ProductID: productID, IngredientID: ingredientID, QuantityNeeded: d(qty),
		Position: len(g.products[productID]),
	})
}

func (g *graph) makes(compoundID, baseID, qty string, unit entity.Unit, yield string) {
	g.compounds[compoundID] = append(g.compounds[compoundID], entity.CompoundRecipeEdge{
		CompoundIngredientID: compoundID, BaseIngredientID: baseID,
		QuantityNeeded: d(qty), Unit: unit, YieldAmount: d(yield),
		Position: len(g.compounds[compoundID]),
	})
}

func (g *graph) GetByID(_ context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	if restaurantID != rid {
		return nil, nil
	}
	ing, ok := g.ingredients[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (g *graph) ListByProduct(_ context.Context, _ string, productID string) ([]entity.RecipeEdge, error) {
	return g.products[productID], nil
}

func (g *graph) ListByCompound(_ context.Context, _ string, compoundID string) ([]entity.CompoundRecipeEdge, error) {
	return g.compounds[compoundID], nil
}

func (g *graph) resolver(opts recipe.Options) *recipe.Resolver {
	return recipe.NewResolver(rid, g, g, opts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailability_PanConHarina(t *testing.T) {
	g := newGraph()
	g.add("flour", "Flour", entity.UnitGram, "1000", "0.002", false)
	g.uses("bread", "flour", "250")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "bread", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rep.MaxUnits)
	assert.Equal(t, "Flour", rep.LimitingIngredientName)
	assert.True(t, rep.IsAvailable)

	g.ingredients["flour"].CurrentStock = d("999")
	rep, err = g.resolver(recipe.Options{}).Availability(context.Background(), "bread", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rep.MaxUnits)
	assert.False(t, rep.IsAvailable, "3 unidades no alcanzan para 4 solicitadas")
}

func TestAvailability_JarabeDePinaCompuesto(t *testing.T) {
	g := newGraph()
	g.add("syrup", "Pineapple Syrup", entity.UnitLiter, "0", "", true)
	g.add("pineapple", "Pineapple", entity.UnitGram, "1500", "0.004", false)
	g.add("sugar", "Sugar", entity.UnitGram, "1000", "0.001", false)
	g.makes("syrup", "pineapple", "500", entity.UnitGram, "1")
	g.makes("syrup", "sugar", "200", entity.UnitGram, "1")
	g.uses("smoothie", "syrup", "0.5")

	r := g.resolver(recipe.Options{})
	eff, err := r.EffectiveStock(context.Background(), "syrup")
	require.NoError(t, err)
	assert.True(t, eff.Equal(d("3")), "3 lotes producibles, got %s", eff)

	rep, err := r.Availability(context.Background(), "smoothie", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), rep.MaxUnits)
	assert.Equal(t, "Pineapple Syrup", rep.LimitingIngredientName)
	require.Len(t, rep.Lines, 1)
	assert.True(t, rep.Lines[0].IsCompound)
}

func TestAvailability_CompuestoSumaStockPropioYConversionDeUnidades(t *testing.T) {
	g := newGraph()
	g.add("dough", "Dough", entity.UnitKilogram, "1", "", true)
	g.add("flour", "Flour", entity.UnitKilogram, "2.5", "1", false)
	// 500 g de harina (convertidos a kg) rinden 1 kg de masa
	g.makes("dough", "flour", "500", entity.UnitGram, "1")
	g.uses("pizza", "dough", "0.25")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "pizza", 1)
	require.NoError(t, err)
	// efectivo = 1 (propio) + floor(2.5/0.5 * 1) = 6 kg -> 24 pizzas
	assert.Equal(t, int64(24), rep.MaxUnits)
}

func TestAvailability_CompuestoAnidado(t *testing.T) {
	g := newGraph()
	g.add("sauce", "Sauce", entity.UnitLiter, "0", "", true)
	g.add("stock", "Stock", entity.UnitLiter, "0", "", true)
	g.add("bones", "Bones", entity.UnitKilogram, "4", "2", false)
	g.add("tomato", "Tomato", entity.UnitKilogram, "10", "3", false)
	g.makes("stock", "bones", "1", "", "2") // 1 kg de huesos -> 2 l de caldo
	g.makes("sauce", "stock", "1", "", "1") // 1 l caldo + 2 kg tomate -> 1 l salsa
	g.makes("sauce", "tomato", "2", "", "1")
	g.uses("pasta", "sauce", "0.5")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "pasta", 1)
	require.NoError(t, err)
	// caldo efectivo = 8 l; salsa = floor(min(8/1, 10/2)) = 5 l; pasta = 10
	assert.Equal(t, int64(10), rep.MaxUnits)
}

func TestAvailability_RendimientoSeMultiplicaAntesDeRedondear(t *testing.T) {
	g := newGraph()
	g.add("dough", "Masa", entity.UnitPiece, "0", "", true)
	g.add("flour", "Harina", entity.UnitGram, "750", "0.002", false)
	// 500 g de harina rinden 2 bollos de masa; hay 1.5 lotes de harina
	g.makes("dough", "flour", "500", entity.UnitGram, "2")
	g.uses("pizza", "dough", "1")

	r := g.resolver(recipe.Options{})
	eff, err := r.EffectiveStock(context.Background(), "dough")
	require.NoError(t, err)
	assert.True(t, eff.Equal(d("3")), "floor(1.5 * 2) = 3, got %s", eff)

	rep, err := r.Availability(context.Background(), "pizza", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rep.MaxUnits)
	assert.True(t, rep.IsAvailable)
}

func TestAvailability_EmpateTomaPrimeroEnOrdenDeReceta(t *testing.T) {
	g := newGraph()
	g.add("a", "Cheese", entity.UnitGram, "100", "1", false)
	g.add("b", "Ham", entity.UnitGram, "100", "1", false)
	g.uses("sandwich", "a", "50")
	g.uses("sandwich", "b", "50")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "sandwich", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.MaxUnits)
	assert.Equal(t, "Cheese", rep.LimitingIngredientName)
}

func TestAvailability_StockNegativoCuentaComoCero(t *testing.T) {
	g := newGraph()
	g.add("milk", "Milk", entity.UnitMilliliter, "-20", "1", false)
	g.uses("latte", "milk", "200")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "latte", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rep.MaxUnits)
	assert.Equal(t, "Milk", rep.LimitingIngredientName)
	assert.False(t, rep.IsAvailable)
}

func TestAvailability_SinRecetaSegunPolitica(t *testing.T) {
	g := newGraph()

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "water", 3)
	require.NoError(t, err)
	assert.True(t, rep.Unconstrained)
	assert.True(t, rep.IsAvailable)
	assert.Empty(t, rep.LimitingIngredientName)

	rep, err = g.resolver(recipe.Options{EmptyRecipePolicy: recipe.EmptyRecipeUnavailable}).
		Availability(context.Background(), "water", 1)
	require.NoError(t, err)
	assert.False(t, rep.Unconstrained)
	assert.False(t, rep.IsAvailable)
	assert.Equal(t, int64(0), rep.MaxUnits)
}

func TestAvailability_IngredienteInexistente(t *testing.T) {
	g := newGraph()
	g.uses("bread", "ghost", "1")

	_, err := g.resolver(recipe.Options{}).Availability(context.Background(), "bread", 1)
	var nf *domain.IngredientNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ghost", nf.IngredientID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAvailability_CantidadInvalida(t *testing.T) {
	g := newGraph()
	_, err := g.resolver(recipe.Options{}).Availability(context.Background(), "bread", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	g.add("flour", "Flour", entity.UnitGram, "10", "1", false)
	g.uses("bread", "flour", "0")
	_, err = g.resolver(recipe.Options{}).Availability(context.Background(), "bread", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

func TestAvailability_UnidadIncompatible(t *testing.T) {
	g := newGraph()
	g.add("syrup", "Syrup", entity.UnitLiter, "0", "", true)
	g.add("sugar", "Sugar", entity.UnitGram, "1000", "1", false)
	g.makes("syrup", "sugar", "1", entity.UnitLiter, "1")
	g.uses("drink", "syrup", "1")

	_, err := g.resolver(recipe.Options{}).Availability(context.Background(), "drink", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

func TestAvailability_MonotonaAlBajarStock(t *testing.T) {
	g := newGraph()
	g.add("flour", "Flour", entity.UnitGram, "0", "1", false)
	g.add("egg", "Egg", entity.UnitPiece, "12", "1", false)
	g.uses("cake", "flour", "300")
	g.uses("cake", "egg", "2")

	prev := int64(1 << 62)
	for stock := 3000; stock >= 0; stock -= 137 {
		g.ingredients["flour"].CurrentStock = decimal.NewFromInt(int64(stock))
		rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "cake", 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, rep.MaxUnits, prev)
		prev = rep.MaxUnits
	}
}

func TestAvailability_SinCompuestosEsMinimoDeCocientes(t *testing.T) {
	g := newGraph()
	g.add("a", "A", entity.UnitGram, "950", "1", false)
	g.add("b", "B", entity.UnitGram, "77", "1", false)
	g.add("c", "C", entity.UnitGram, "1000", "1", false)
	g.uses("p", "a", "100")
	g.uses("p", "b", "7.5")
	g.uses("p", "c", "333")

	rep, err := g.resolver(recipe.Options{}).Availability(context.Background(), "p", 1)
	require.NoError(t, err)
	// floor(950/100)=9, floor(77/7.5)=10, floor(1000/333)=3
	assert.Equal(t, int64(3), rep.MaxUnits)
	assert.Equal(t, "C", rep.LimitingIngredientName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclos
// ──────────────────────────────────────────────────────────────────────────────

func cyclicGraph() *graph {
	g := newGraph()
	g.add("A", "Base A", entity.UnitGram, "10", "1", true)
	g.add("B", "Base B", entity.UnitGram, "10", "1", true)
	g.makes("A", "B", "1", "", "1")
	g.makes("B", "A", "1", "", "1")
	g.uses("dish", "A", "1")
	return g
}

func TestCycle_DisponibilidadDevuelveCyclicRecipeError(t *testing.T) {
	_, err := cyclicGraph().resolver(recipe.Options{}).Availability(context.Background(), "dish", 1)
	var cyc *domain.CyclicRecipeError
	require.True(t, errors.As(err, &cyc), "se esperaba CyclicRecipeError, got %v", err)
	assert.Equal(t, []string{"Base A", "Base B", "Base A"}, cyc.Path)
	assert.ErrorIs(t, err, domain.ErrCyclicRecipe)
}

func TestCycle_CostoDevuelveCyclicRecipeError(t *testing.T) {
	_, err := cyclicGraph().resolver(recipe.Options{}).UnitCost(context.Background(), "dish")
	assert.ErrorIs(t, err, domain.ErrCyclicRecipe)
}

func TestCycle_DiamanteNoEsCiclo(t *testing.T) {
	g := newGraph()
	g.add("top", "Top", entity.UnitGram, "0", "", true)
	g.add("left", "Left", entity.UnitGram, "0", "", true)
	g.add("right", "Right", entity.UnitGram, "0", "", true)
	g.add("salt", "Salt", entity.UnitGram, "100", "0.01", false)
	g.makes("top", "left", "1", "", "1")
	g.makes("top", "right", "1", "", "1")
	g.makes("left", "salt", "1", "", "1")
	g.makes("right", "salt", "1", "", "1")

	r := g.resolver(recipe.Options{})
	assert.NoError(t, r.ValidateCompound(context.Background(), "top"))
	cost, err := r.IngredientUnitCost(context.Background(), "top")
	require.NoError(t, err)
	assert.True(t, cost.Valid)
	assert.True(t, cost.Decimal.Equal(d("0.02")))
}

func TestCycle_ProfundidadMaxima(t *testing.T) {
	g := newGraph()
	g.add("c0", "C0", entity.UnitGram, "0", "", true)
	g.add("c1", "C1", entity.UnitGram, "0", "", true)
	g.add("c2", "C2", entity.UnitGram, "0", "", true)
	g.add("leaf", "Leaf", entity.UnitGram, "10", "1", false)
	g.makes("c0", "c1", "1", "", "1")
	g.makes("c1", "c2", "1", "", "1")
	g.makes("c2", "leaf", "1", "", "1")

	err := g.resolver(recipe.Options{MaxDepth: 2}).ValidateCompound(context.Background(), "c0")
	assert.ErrorIs(t, err, domain.ErrRecipeTooDeep)
	assert.NoError(t, g.resolver(recipe.Options{MaxDepth: 3}).ValidateCompound(context.Background(), "c0"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo
// ──────────────────────────────────────────────────────────────────────────────

func TestUnitCost_RollupDeCompuesto(t *testing.T) {
	g := newGraph()
	g.add("syrup", "Pineapple Syrup", entity.UnitLiter, "0", "", true)
	g.add("pineapple", "Pineapple", entity.UnitGram, "1500", "0.004", false)
	g.add("sugar", "Sugar", entity.UnitGram, "1000", "0.001", false)
	g.add("ice", "Ice", entity.UnitGram, "5000", "0.0001", false)
	// lote de 2 l: 500 g piña (2.0) + 200 g azúcar (0.2) = 2.2 -> 1.1 por litro
	g.makes("syrup", "pineapple", "500", entity.UnitGram, "2")
	g.makes("syrup", "sugar", "200", entity.UnitGram, "2")
	g.uses("smoothie", "syrup", "0.5")
	g.uses("smoothie", "ice", "100")

	r := g.resolver(recipe.Options{})
	c, err := r.UnitCost(context.Background(), "smoothie")
	require.NoError(t, err)
	require.True(t, c.UnitCost.Valid)
	// 0.5 * 1.1 + 100 * 0.0001 = 0.56
	assert.True(t, c.UnitCost.Decimal.Equal(d("0.56")), "got %s", c.UnitCost.Decimal)
	assert.Empty(t, c.UnknownCostIngredients)

	again, err := g.resolver(recipe.Options{}).UnitCost(context.Background(), "smoothie")
	require.NoError(t, err)
	assert.True(t, again.UnitCost.Decimal.Equal(c.UnitCost.Decimal), "recalcular debe dar el mismo valor")
}

func TestUnitCost_DesconocidoSePropaga(t *testing.T) {
	g := newGraph()
	g.add("syrup", "Syrup", entity.UnitLiter, "0", "", true)
	g.add("fruit", "Fruit", entity.UnitGram, "100", "", false) // sin costo
	g.add("sugar", "Sugar", entity.UnitGram, "100", "0.001", false)
	g.add("glass", "Glass", entity.UnitPiece, "100", "0.5", false)
	g.makes("syrup", "fruit", "100", "", "1")
	g.makes("syrup", "sugar", "50", "", "1")
	g.uses("drink", "glass", "1")
	g.uses("drink", "syrup", "0.2")

	c, err := g.resolver(recipe.Options{}).UnitCost(context.Background(), "drink")
	require.NoError(t, err)
	assert.False(t, c.UnitCost.Valid, "nunca debe devolver un valor parcial")
	assert.Equal(t, []string{"Fruit"}, c.UnknownCostIngredients)
	require.Len(t, c.Lines, 2)
	assert.True(t, c.Lines[0].Subtotal.Valid)
	assert.False(t, c.Lines[1].Subtotal.Valid)
}

func TestUnitCost_CompuestoSinRecetaUsaSuCosto(t *testing.T) {
	g := newGraph()
	g.add("jam", "Jam", entity.UnitGram, "100", "0.03", true)
	g.uses("toast", "jam", "10")

	c, err := g.resolver(recipe.Options{}).UnitCost(context.Background(), "toast")
	require.NoError(t, err)
	require.True(t, c.UnitCost.Valid)
	assert.True(t, c.UnitCost.Decimal.Equal(d("0.3")))
}

func TestCostMath_Desconocido(t *testing.T) {
	x := decimal.NewNullDecimal(d("5"))
	assert.False(t, recipe.AddCost(recipe.Unknown, x).Valid)
	assert.False(t, recipe.AddCost(x, recipe.Unknown).Valid)
	assert.False(t, recipe.MulCost(recipe.Unknown, d("3")).Valid)
	assert.True(t, recipe.AddCost(x, x).Decimal.Equal(d("10")))
}

func TestDepletedBases_RecorreCompuestosAnidados(t *testing.T) {
	g := newGraph()
	g.add("sauce", "Salsa", entity.UnitLiter, "0", "", true)
	g.add("stock", "Caldo", entity.UnitLiter, "0", "", true)
	g.add("bones", "Huesos", entity.UnitKilogram, "0", "2", false)
	g.add("tomato", "Tomate", entity.UnitKilogram, "0", "3", false)
	g.add("salt", "Sal", entity.UnitGram, "500", "0.001", false)
	g.makes("stock", "bones", "1", "", "2")
	g.makes("sauce", "stock", "1", "", "1")
	g.makes("sauce", "tomato", "2", "", "1")
	g.makes("sauce", "salt", "10", "", "1")

	bases, err := g.resolver(recipe.Options{}).DepletedBases(context.Background(), "sauce")
	require.NoError(t, err)
	names := make([]string, 0, len(bases))
	for _, b := range bases {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Caldo", "Huesos", "Tomate"}, names)
}
