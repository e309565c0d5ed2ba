package kitchen

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// AvailabilityUseCase consultas de disponibilidad y costo. Cada cálculo corre sobre una
// lectura consistente y usa su propio resolver; nada se cachea entre peticiones.
type AvailabilityUseCase struct {
	txRunner TxRunner
	settings Settings
	log      *logger.Logger
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(txRunner TxRunner, settings Settings, log *logger.Logger) *AvailabilityUseCase {
	if settings.CatalogConcurrency <= 0 {
		settings.CatalogConcurrency = 4
	}
	return &AvailabilityUseCase{txRunner: txRunner, settings: settings, log: log.WithComponent("availability")}
}

// ComputeAvailability unidades vendibles de un producto y su ingrediente limitante.
func (uc *AvailabilityUseCase) ComputeAvailability(ctx context.Context, restaurantID, productID string, requested int64) (*dto.AvailabilityResponse, error) {
	var out *dto.AvailabilityResponse
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		product, err := getProduct(ctx, repos, restaurantID, productID)
		if err != nil {
			return err
		}
		out, err = uc.availabilityOf(ctx, repos, restaurantID, product, requested)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *AvailabilityUseCase) availabilityOf(ctx context.Context, repos Repos, restaurantID string, product *entity.Product, requested int64) (*dto.AvailabilityResponse, error) {
	report, err := uc.settings.newResolver(restaurantID, repos).Availability(ctx, product.ID, requested)
	if err != nil {
		return nil, err
	}
	resp := &dto.AvailabilityResponse{
		ProductID:         product.ID,
		ProductName:       product.Name,
		RequestedQuantity: report.RequestedQuantity,
		IsAvailable:       report.IsAvailable,
		Lines:             make([]dto.AvailabilityLineDTO, 0, len(report.Lines)),
	}
	if !report.Unconstrained {
		maxUnits := report.MaxUnits
		resp.MaxUnits = &maxUnits
	}
	if report.LimitingIngredientID != "" {
		id, name := report.LimitingIngredientID, report.LimitingIngredientName
		resp.LimitingIngredientID = &id
		resp.LimitingIngredientName = &name
	}
	for _, l := range report.Lines {
		resp.Lines = append(resp.Lines, dto.AvailabilityLineDTO{
			IngredientID:   l.IngredientID,
			IngredientName: l.IngredientName,
			IsCompound:     l.IsCompound,
			QuantityNeeded: l.QuantityNeeded,
			EffectiveStock: l.EffectiveStock,
			Units:          l.Units,
		})
	}
	return resp, nil
}

// ComputeUnitCost costo unitario de un producto; UnitCost null si algún ingrediente no tiene costo.
func (uc *AvailabilityUseCase) ComputeUnitCost(ctx context.Context, restaurantID, productID string) (*dto.CostResponse, error) {
	var out *dto.CostResponse
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		product, err := getProduct(ctx, repos, restaurantID, productID)
		if err != nil {
			return err
		}
		breakdown, err := uc.settings.newResolver(restaurantID, repos).UnitCost(ctx, product.ID)
		if err != nil {
			return err
		}
		out = &dto.CostResponse{
			ProductID:              product.ID,
			ProductName:            product.Name,
			UnitCost:               breakdown.UnitCost,
			CostKnown:              breakdown.UnitCost.Valid,
			Lines:                  make([]dto.CostLineDTO, 0, len(breakdown.Lines)),
			UnknownCostIngredients: breakdown.UnknownCostIngredients,
		}
		for _, l := range breakdown.Lines {
			out.Lines = append(out.Lines, dto.CostLineDTO{
				IngredientID:   l.IngredientID,
				IngredientName: l.IngredientName,
				QuantityNeeded: l.QuantityNeeded,
				UnitCost:       l.UnitCost,
				Subtotal:       l.Subtotal,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Catalog disponibilidad de todos los productos activos, en paralelo (acotado por CatalogConcurrency).
// Un producto con receta inválida o cíclica se reporta en su campo Error sin abortar el resto.
func (uc *AvailabilityUseCase) Catalog(ctx context.Context, restaurantID string, requested int64) ([]dto.AvailabilityResponse, error) {
	if requested < 1 {
		return nil, fmt.Errorf("%w: cantidad solicitada debe ser >= 1", domain.ErrInvalidInput)
	}
	var products []*entity.Product
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		var err error
		products, err = repos.Products.ListActive(ctx, restaurantID)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.AvailabilityResponse, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.settings.CatalogConcurrency)
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			var resp *dto.AvailabilityResponse
			err := uc.txRunner.RunReadOnly(gctx, func(repos Repos) error {
				var err error
				resp, err = uc.availabilityOf(gctx, repos, restaurantID, p, requested)
				return err
			})
			if err != nil {
				if !isRecipeError(err) {
					return err
				}
				uc.log.Warn().Str("product_id", p.ID).Err(err).Msg("receta no resoluble en catálogo")
				resp = &dto.AvailabilityResponse{
					ProductID:         p.ID,
					ProductName:       p.Name,
					RequestedQuantity: requested,
					Error:             err.Error(),
				}
			}
			out[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func isRecipeError(err error) bool {
	return errors.Is(err, domain.ErrInvalidRecipe) ||
		errors.Is(err, domain.ErrCyclicRecipe) ||
		errors.Is(err, domain.ErrRecipeTooDeep) ||
		errors.Is(err, domain.ErrNotFound)
}

func getProduct(ctx context.Context, repos Repos, restaurantID, productID string) (*entity.Product, error) {
	product, err := repos.Products.GetByID(ctx, restaurantID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return product, nil
}
