// Package memory implementa el store en memoria: mismo contrato que PostgreSQL para
// desarrollo local y pruebas. Cada transacción trabaja sobre una copia del estado que
// se publica completa al confirmar.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

var _ kitchen.TxRunner = (*Store)(nil)

// ErrReadOnly se devuelve al intentar escribir dentro de RunReadOnly.
var ErrReadOnly = errors.New("memory: escritura en transacción de solo lectura")

// Store estado en memoria protegido por un RWMutex. Las escrituras se serializan
// (equivalente a tomar todos los bloqueos de fila); las lecturas ven un estado publicado e inmutable.
type Store struct {
	mu    sync.RWMutex
	state *state
}

type state struct {
	ingredients     map[string]entity.Ingredient
	products        map[string]entity.Product
	productRecipes  map[string][]entity.RecipeEdge
	compoundRecipes map[string][]entity.CompoundRecipeEdge
	movements       []entity.IngredientMovement
	batches         map[string]entity.ProductionBatch
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{state: &state{
		ingredients:     make(map[string]entity.Ingredient),
		products:        make(map[string]entity.Product),
		productRecipes:  make(map[string][]entity.RecipeEdge),
		compoundRecipes: make(map[string][]entity.CompoundRecipeEdge),
		batches:         make(map[string]entity.ProductionBatch),
	}}
}

func (s *state) clone() *state {
	c := &state{
		ingredients:     make(map[string]entity.Ingredient, len(s.ingredients)),
		products:        make(map[string]entity.Product, len(s.products)),
		productRecipes:  make(map[string][]entity.RecipeEdge, len(s.productRecipes)),
		compoundRecipes: make(map[string][]entity.CompoundRecipeEdge, len(s.compoundRecipes)),
		movements:       make([]entity.IngredientMovement, len(s.movements)),
		batches:         make(map[string]entity.ProductionBatch, len(s.batches)),
	}
	for k, v := range s.ingredients {
		c.ingredients[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	// los slices de recetas y líneas de lote se reemplazan completos, nunca se modifican en sitio
	for k, v := range s.productRecipes {
		c.productRecipes[k] = v
	}
	for k, v := range s.compoundRecipes {
		c.compoundRecipes[k] = v
	}
	copy(c.movements, s.movements)
	for k, v := range s.batches {
		c.batches[k] = v
	}
	return c
}

// Run ejecuta fn sobre una copia del estado y la publica si fn no devuelve error (Commit).
func (s *Store) Run(ctx context.Context, fn func(repos kitchen.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(reposFor(work, false)); err != nil {
		return err
	}
	s.state = work
	return nil
}

// RunReadOnly ejecuta fn sobre el último estado publicado.
func (s *Store) RunReadOnly(ctx context.Context, fn func(repos kitchen.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snapshot := s.state
	s.mu.RUnlock()
	return fn(reposFor(snapshot, true))
}

func reposFor(st *state, readOnly bool) kitchen.Repos {
	return kitchen.Repos{
		Ingredients: &IngredientRepo{st: st, readOnly: readOnly},
		Recipes:     &RecipeRepo{st: st, readOnly: readOnly},
		Movements:   &MovementRepo{st: st, readOnly: readOnly},
		Batches:     &BatchRepo{st: st, readOnly: readOnly},
		Products:    &ProductRepo{st: st, readOnly: readOnly},
	}
}

func recipeKey(restaurantID, id string) string {
	return restaurantID + "/" + id
}
