package kitchen_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

func TestIngredientCreate_RegistraStockInicial(t *testing.T) {
	f := newFixture(t)
	uc := kitchen.NewIngredientUseCase(f.store, f.settings, f.log)
	cost := d("0.01")

	resp, err := uc.Create(f.ctx, rid, "u1", dto.CreateIngredientRequest{
		Name: " Harina ", Unit: "G", InitialStock: d("500"), MinStock: d("100"), CostPerUnit: &cost,
	})
	require.NoError(t, err)
	assert.Equal(t, "Harina", resp.Name)
	assert.Equal(t, "g", resp.Unit)
	requireDec(t, "500", resp.CurrentStock)

	movs := f.movements(resp.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeADJUSTMENT, movs[0].Type)
	assert.Equal(t, entity.ReferenceInitialStock, movs[0].ReferenceType)
	requireDec(t, "0", movs[0].PreviousStock)
	requireDec(t, "500", movs[0].NewStock)

	_, err = uc.Create(f.ctx, rid, "u1", dto.CreateIngredientRequest{Name: "harina", Unit: "g"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = uc.Create(f.ctx, rid, "u1", dto.CreateIngredientRequest{Name: "Agua", Unit: "gal"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSetCompoundRecipe_RechazaCicloYRevierte(t *testing.T) {
	f := newFixture(t)
	f.ingredient("a", "Base A", entity.UnitGram, "0", "0", "", true)
	f.ingredient("b", "Base B", entity.UnitGram, "0", "0", "", true)
	f.ingredient("water", "Agua", entity.UnitMilliliter, "1000", "0", "", false)
	uc := kitchen.NewIngredientUseCase(f.store, f.settings, f.log)

	require.NoError(t, uc.SetCompoundRecipe(f.ctx, rid, "a", dto.SetCompoundRecipeRequest{
		YieldAmount: d("1"),
		Lines:       []dto.CompoundRecipeLineRequest{{BaseIngredientID: "b", QuantityNeeded: d("1")}},
	}))
	require.NoError(t, uc.SetCompoundRecipe(f.ctx, rid, "b", dto.SetCompoundRecipeRequest{
		YieldAmount: d("1"),
		Lines:       []dto.CompoundRecipeLineRequest{{BaseIngredientID: "water", QuantityNeeded: d("0.1"), Unit: "l"}},
	}))

	err := uc.SetCompoundRecipe(f.ctx, rid, "b", dto.SetCompoundRecipeRequest{
		YieldAmount: d("1"),
		Lines:       []dto.CompoundRecipeLineRequest{{BaseIngredientID: "a", QuantityNeeded: d("1")}},
	})
	var ce *domain.CyclicRecipeError
	require.True(t, errors.As(err, &ce))

	var edges []entity.CompoundRecipeEdge
	require.NoError(t, f.store.RunReadOnly(f.ctx, func(repos kitchen.Repos) error {
		var err error
		edges, err = repos.Recipes.ListByCompound(f.ctx, rid, "b")
		return err
	}))
	require.Len(t, edges, 1)
	assert.Equal(t, "water", edges[0].BaseIngredientID)
}

// lockSpyRunner registra el orden de las llamadas al repositorio de ingredientes.
type lockSpyRunner struct {
	kitchen.TxRunner
	mu    sync.Mutex
	calls []string
}

func (r *lockSpyRunner) Run(ctx context.Context, fn func(repos kitchen.Repos) error) error {
	return r.TxRunner.Run(ctx, func(repos kitchen.Repos) error {
		repos.Ingredients = &lockSpyIngredients{IngredientRepository: repos.Ingredients, runner: r}
		return fn(repos)
	})
}

func (r *lockSpyRunner) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

type lockSpyIngredients struct {
	repository.IngredientRepository
	runner *lockSpyRunner
}

func (s *lockSpyIngredients) LockCompounds(ctx context.Context, restaurantID string) error {
	s.runner.record("lock")
	return s.IngredientRepository.LockCompounds(ctx, restaurantID)
}

func (s *lockSpyIngredients) GetByID(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	s.runner.record("get:" + id)
	return s.IngredientRepository.GetByID(ctx, restaurantID, id)
}

func TestSetCompoundRecipe_BloqueaCompuestosAntesDeValidar(t *testing.T) {
	f := newFixture(t)
	f.ingredient("a", "Base A", entity.UnitGram, "0", "0", "", true)
	f.ingredient("b", "Base B", entity.UnitGram, "0", "0", "", true)
	spy := &lockSpyRunner{TxRunner: f.store}
	uc := kitchen.NewIngredientUseCase(spy, f.settings, f.log)

	require.NoError(t, uc.SetCompoundRecipe(f.ctx, rid, "a", dto.SetCompoundRecipeRequest{
		YieldAmount: d("1"),
		Lines:       []dto.CompoundRecipeLineRequest{{BaseIngredientID: "b", QuantityNeeded: d("1")}},
	}))
	require.GreaterOrEqual(t, len(spy.calls), 3)
	// el compuesto se lee, luego se bloquean todos los compuestos y recién entonces se leen las bases
	assert.Equal(t, []string{"get:a", "lock", "get:b"}, spy.calls[:3])
}

func TestSetCompoundRecipe_EdicionesCruzadasConcurrentesNoCierranCiclo(t *testing.T) {
	f := newFixture(t)
	f.ingredient("a", "Base A", entity.UnitGram, "0", "0", "", true)
	f.ingredient("b", "Base B", entity.UnitGram, "0", "0", "", true)
	uc := kitchen.NewIngredientUseCase(f.store, f.settings, f.log)

	edit := func(compound, base string) error {
		return uc.SetCompoundRecipe(f.ctx, rid, compound, dto.SetCompoundRecipeRequest{
			YieldAmount: d("1"),
			Lines:       []dto.CompoundRecipeLineRequest{{BaseIngredientID: base, QuantityNeeded: d("1")}},
		})
	}
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); errs[0] = edit("a", "b") }()
	go func() { defer wg.Done(); errs[1] = edit("b", "a") }()
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			var ce *domain.CyclicRecipeError
			require.True(t, errors.As(err, &ce))
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	var edgesA, edgesB []entity.CompoundRecipeEdge
	require.NoError(t, f.store.RunReadOnly(f.ctx, func(repos kitchen.Repos) error {
		var err error
		if edgesA, err = repos.Recipes.ListByCompound(f.ctx, rid, "a"); err != nil {
			return err
		}
		edgesB, err = repos.Recipes.ListByCompound(f.ctx, rid, "b")
		return err
	}))
	assert.Equal(t, 1, len(edgesA)+len(edgesB))
}

func TestSetCompoundRecipe_Validaciones(t *testing.T) {
	f := newFixture(t)
	f.ingredient("syrup", "Jarabe", entity.UnitLiter, "0", "0", "", true)
	f.ingredient("sugar", "Azúcar", entity.UnitGram, "0", "0", "", false)
	uc := kitchen.NewIngredientUseCase(f.store, f.settings, f.log)
	line := dto.CompoundRecipeLineRequest{BaseIngredientID: "sugar", QuantityNeeded: d("100")}

	err := uc.SetCompoundRecipe(f.ctx, rid, "syrup", dto.SetCompoundRecipeRequest{YieldAmount: d("0"), Lines: []dto.CompoundRecipeLineRequest{line}})
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))

	err = uc.SetCompoundRecipe(f.ctx, rid, "syrup", dto.SetCompoundRecipeRequest{YieldAmount: d("1"), Lines: []dto.CompoundRecipeLineRequest{line, line}})
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))

	err = uc.SetCompoundRecipe(f.ctx, rid, "sugar", dto.SetCompoundRecipeRequest{YieldAmount: d("1"), Lines: []dto.CompoundRecipeLineRequest{{BaseIngredientID: "syrup", QuantityNeeded: d("1")}}})
	assert.True(t, errors.Is(err, domain.ErrNotCompound))

	err = uc.SetCompoundRecipe(f.ctx, rid, "syrup", dto.SetCompoundRecipeRequest{YieldAmount: d("1"), Lines: []dto.CompoundRecipeLineRequest{{BaseIngredientID: "sugar", QuantityNeeded: d("1"), Unit: "ml"}}})
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))
}

func TestProduct_CrearYAsignarReceta(t *testing.T) {
	f := newFixture(t)
	f.ingredient("flour", "Harina", entity.UnitGram, "1000", "0", "", false)
	uc := kitchen.NewProductUseCase(f.store, f.log)

	p, err := uc.Create(f.ctx, rid, dto.CreateProductRequest{Name: "Pan", Price: d("2500")})
	require.NoError(t, err)
	assert.True(t, p.IsActive)

	require.NoError(t, uc.SetRecipe(f.ctx, rid, p.ID, dto.SetRecipeRequest{
		Lines: []dto.RecipeLineRequest{{IngredientID: "flour", QuantityNeeded: d("250")}},
	}))

	err = uc.SetRecipe(f.ctx, rid, p.ID, dto.SetRecipeRequest{Lines: []dto.RecipeLineRequest{
		{IngredientID: "flour", QuantityNeeded: d("1")},
		{IngredientID: "flour", QuantityNeeded: d("2")},
	}})
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))

	err = uc.SetRecipe(f.ctx, rid, p.ID, dto.SetRecipeRequest{Lines: []dto.RecipeLineRequest{{IngredientID: "ghost", QuantityNeeded: d("1")}}})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = uc.SetRecipe(f.ctx, rid, "missing", dto.SetRecipeRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	avail := kitchen.NewAvailabilityUseCase(f.store, f.settings, f.log)
	resp, err := avail.ComputeAvailability(f.ctx, rid, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *resp.MaxUnits)
}
