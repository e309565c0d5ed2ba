package kitchen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/inventory"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// MovementUseCase registra movimientos de ingredientes de forma transaccional
// (IN, OUT, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	settings Settings
	log      *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, settings Settings, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, settings: settings, log: log.WithComponent("movements")}
}

// MovementInput entrada para registrar un movimiento.
// Quantity > 0 para IN/OUT; para ADJUSTMENT es un delta con signo distinto de cero.
// UnitCost solo aplica a IN y actualiza el costo promedio ponderado del ingrediente.
type MovementInput struct {
	RestaurantID  string
	UserID        string
	IngredientID  string
	Type          string
	Quantity      decimal.Decimal
	UnitCost      *decimal.Decimal
	ReferenceType string
	ReferenceID   string
	Notes         string
}

func (in *MovementInput) validate() error {
	if in.RestaurantID == "" || in.IngredientID == "" {
		return fmt.Errorf("%w: restaurante e ingrediente son obligatorios", domain.ErrInvalidInput)
	}
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if !in.Quantity.IsPositive() {
			return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
	case entity.MovementTypeADJUSTMENT:
		if in.Quantity.IsZero() {
			return fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, in.Type)
	}
	if in.UnitCost != nil {
		if in.Type != entity.MovementTypeIN {
			return fmt.Errorf("%w: unit_cost solo aplica a entradas", domain.ErrInvalidInput)
		}
		if in.UnitCost.IsNegative() {
			return fmt.Errorf("%w: unit_cost negativo", domain.ErrInvalidInput)
		}
	}
	switch in.ReferenceType {
	case "":
		in.ReferenceType = entity.ReferenceManual
	case entity.ReferenceManual, entity.ReferencePurchase, entity.ReferenceSale:
	default:
		return fmt.Errorf("%w: tipo de referencia %q", domain.ErrInvalidInput, in.ReferenceType)
	}
	return nil
}

// ApplyMovement inicia una transacción, bloquea la fila del ingrediente, aplica el cambio de stock,
// agrega el registro al ledger y hace Commit. Si la salida dejaría el stock en negativo devuelve
// *domain.InsufficientStockError sin modificar nada.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, in MovementInput) (*entity.IngredientMovement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var entryCost decimal.NullDecimal
	if in.UnitCost != nil {
		entryCost = decimal.NewNullDecimal(*in.UnitCost)
	}

	var mov *entity.IngredientMovement
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		ing, err := repos.Ingredients.GetForUpdate(ctx, in.RestaurantID, in.IngredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return &domain.IngredientNotFoundError{IngredientID: in.IngredientID}
		}
		mov, err = applyStockChange(ctx, repos, ing, stockChange{
			UserID:        in.UserID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			UnitCost:      entryCost,
			ReferenceType: in.ReferenceType,
			ReferenceID:   in.ReferenceID,
			Notes:         in.Notes,
			Now:           time.Now().UTC(),
		}, uc.settings.AllowNegativeStock)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Warn().Str("ingredient_id", in.IngredientID).Err(err).Msg("movimiento rechazado")
		}
		return nil, err
	}
	uc.log.Info().
		Str("restaurant_id", in.RestaurantID).
		Str("ingredient_id", in.IngredientID).
		Str("type", mov.Type).
		Str("quantity", mov.Quantity.String()).
		Str("new_stock", mov.NewStock.String()).
		Msg("movimiento registrado")
	return mov, nil
}

// History devuelve el ledger de un ingrediente, más reciente primero.
func (uc *MovementUseCase) History(ctx context.Context, restaurantID, ingredientID string, limit, offset int) ([]*entity.IngredientMovement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []*entity.IngredientMovement
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		ing, err := repos.Ingredients.GetByID(ctx, restaurantID, ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return &domain.IngredientNotFoundError{IngredientID: ingredientID}
		}
		out, err = repos.Movements.ListByIngredient(ctx, restaurantID, ingredientID, limit, offset)
		return err
	})
	return out, err
}

// stockChange cambio sobre una fila ya bloqueada.
// UnitCost en IN es el costo de entrada a promediar; en OUT/ADJUSTMENT se ignora y se registra el costo vigente.
type stockChange struct {
	UserID        string
	Type          string
	Quantity      decimal.Decimal
	UnitCost      decimal.NullDecimal
	ReferenceType string
	ReferenceID   string
	Notes         string
	Now           time.Time
}

func (c stockChange) delta() decimal.Decimal {
	if c.Type == entity.MovementTypeOUT {
		return c.Quantity.Neg()
	}
	return c.Quantity
}

// applyStockChange aplica el cambio a ing (bloqueado por el caller) dentro de la tx de repos.
// Actualiza ing en memoria para que el caller vea el nuevo stock y costo.
func applyStockChange(ctx context.Context, repos Repos, ing *entity.Ingredient, c stockChange, allowNegative bool) (*entity.IngredientMovement, error) {
	prev := ing.CurrentStock
	delta := c.delta()
	next := prev.Add(delta)
	if delta.IsNegative() && next.IsNegative() && !allowNegative {
		return nil, &domain.InsufficientStockError{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Requested:    delta.Neg(),
			Available:    prev,
		}
	}

	recordedCost := ing.CostPerUnit
	if c.Type == entity.MovementTypeIN && c.UnitCost.Valid {
		newCost := inventory.CostCalculator(prev, ing.CostPerUnit, c.Quantity, c.UnitCost.Decimal)
		if err := repos.Ingredients.UpdateCost(ctx, ing.RestaurantID, ing.ID, decimal.NewNullDecimal(newCost)); err != nil {
			return nil, err
		}
		ing.CostPerUnit = decimal.NewNullDecimal(newCost)
		recordedCost = c.UnitCost
	}

	if err := repos.Ingredients.UpdateStock(ctx, ing.RestaurantID, ing.ID, next); err != nil {
		return nil, err
	}
	ing.CurrentStock = next
	ing.UpdatedAt = c.Now

	mov := &entity.IngredientMovement{
		ID:            uuid.New().String(),
		RestaurantID:  ing.RestaurantID,
		IngredientID:  ing.ID,
		Type:          c.Type,
		Quantity:      c.Quantity,
		ReferenceType: c.ReferenceType,
		ReferenceID:   c.ReferenceID,
		Notes:         c.Notes,
		UnitCost:      recordedCost,
		PreviousStock: prev,
		NewStock:      next,
		CreatedBy:     c.UserID,
		CreatedAt:     c.Now,
	}
	if err := repos.Movements.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}
