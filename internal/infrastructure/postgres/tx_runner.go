package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// Ensure TxRunner implements kitchen.TxRunner.
var _ kitchen.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción (READ COMMITTED), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los bloqueos de fila los toma el caso de uso con GetForUpdate.
func (r *TxRunner) Run(ctx context.Context, fn func(repos kitchen.Repos) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// RunReadOnly abre una transacción REPEATABLE READ de solo lectura: todas las consultas de fn
// ven el mismo snapshot, sin bloquear a los escritores.
func (r *TxRunner) RunReadOnly(ctx context.Context, fn func(repos kitchen.Repos) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(repos kitchen.Repos) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepos(q Querier) kitchen.Repos {
	return kitchen.Repos{
		Ingredients: NewIngredientRepository(q),
		Recipes:     NewRecipeRepository(q),
		Movements:   NewIngredientMovementRepository(q),
		Batches:     NewProductionBatchRepository(q),
		Products:    NewProductRepository(q),
	}
}
