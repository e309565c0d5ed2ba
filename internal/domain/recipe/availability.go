package recipe

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// LineAvailability detalle por línea directa de la receta.
type LineAvailability struct {
	IngredientID   string
	IngredientName string
	IsCompound     bool
	QuantityNeeded decimal.Decimal
	EffectiveStock decimal.Decimal // stock propio + producible si es compuesto
	Units          int64
}

// Availability reporte calculado (no persistido) de unidades vendibles de un producto.
// LimitingIngredientID vacío significa que no hay restricción (producto sin receta).
type Availability struct {
	ProductID              string
	RequestedQuantity      int64
	MaxUnits               int64
	Unconstrained          bool
	LimitingIngredientID   string
	LimitingIngredientName string
	IsAvailable            bool
	Lines                  []LineAvailability
}

// Availability calcula cuántas unidades del producto se pueden vender con el stock actual.
// El ingrediente limitante es el primero (en orden de receta) que alcanza el mínimo.
func (r *Resolver) Availability(ctx context.Context, productID string, requested int64) (*Availability, error) {
	if requested < 1 {
		return nil, fmt.Errorf("%w: cantidad solicitada debe ser >= 1", domain.ErrInvalidInput)
	}
	edges, err := r.recipes.ListByProduct(ctx, r.restaurantID, productID)
	if err != nil {
		return nil, err
	}
	report := &Availability{ProductID: productID, RequestedQuantity: requested}
	if len(edges) == 0 {
		if r.opts.EmptyRecipePolicy == EmptyRecipeUnavailable {
			report.IsAvailable = false
			return report, nil
		}
		report.Unconstrained = true
		report.IsAvailable = true
		return report, nil
	}

	report.Lines = make([]LineAvailability, 0, len(edges))
	for i, e := range edges {
		if !e.QuantityNeeded.IsPositive() {
			return nil, fmt.Errorf("%w: cantidad no positiva para ingrediente %s", domain.ErrInvalidRecipe, e.IngredientID)
		}
		ing, err := r.ingredient(ctx, e.IngredientID)
		if err != nil {
			return nil, err
		}
		stock, err := r.effectiveStock(ctx, ing, newPath())
		if err != nil {
			return nil, err
		}
		units := stock.Div(e.QuantityNeeded).Floor().IntPart()
		report.Lines = append(report.Lines, LineAvailability{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			IsCompound:     ing.IsCompound,
			QuantityNeeded: e.QuantityNeeded,
			EffectiveStock: stock,
			Units:          units,
		})
		if i == 0 || units < report.MaxUnits {
			report.MaxUnits = units
			report.LimitingIngredientID = ing.ID
			report.LimitingIngredientName = ing.Name
		}
	}
	report.IsAvailable = report.MaxUnits >= requested
	return report, nil
}

// EffectiveStock stock utilizable de un ingrediente: el propio (nunca negativo) más, si es
// compuesto, lo que se puede producir con sus ingredientes base.
func (r *Resolver) EffectiveStock(ctx context.Context, ingredientID string) (decimal.Decimal, error) {
	ing, err := r.ingredient(ctx, ingredientID)
	if err != nil {
		return decimal.Zero, err
	}
	return r.effectiveStock(ctx, ing, newPath())
}

func (r *Resolver) effectiveStock(ctx context.Context, ing *entity.Ingredient, p *path) (decimal.Decimal, error) {
	if v, ok := r.effective[ing.ID]; ok {
		return v, nil
	}
	stock := ing.CurrentStock
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	if !ing.IsCompound {
		r.effective[ing.ID] = stock
		return stock, nil
	}
	if err := p.push(ing, r.opts.MaxDepth); err != nil {
		return decimal.Zero, err
	}
	defer p.pop(ing)

	producible, err := r.producible(ctx, ing, p)
	if err != nil {
		return decimal.Zero, err
	}
	total := stock.Add(producible)
	r.effective[ing.ID] = total
	return total, nil
}

// producible = floor(min sobre líneas base de efectivo(base) / cantidad * rendimiento).
func (r *Resolver) producible(ctx context.Context, compound *entity.Ingredient, p *path) (decimal.Decimal, error) {
	edges, err := r.compoundRecipe(ctx, compound.ID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(edges) == 0 {
		return decimal.Zero, nil
	}
	yield, err := BatchYield(compound, edges)
	if err != nil {
		return decimal.Zero, err
	}
	var batches decimal.Decimal
	for i, e := range edges {
		base, err := r.ingredient(ctx, e.BaseIngredientID)
		if err != nil {
			return decimal.Zero, err
		}
		qty, err := BaseQuantity(e, base)
		if err != nil {
			return decimal.Zero, err
		}
		avail, err := r.effectiveStock(ctx, base, p)
		if err != nil {
			return decimal.Zero, err
		}
		n := avail.Div(qty)
		if i == 0 || n.LessThan(batches) {
			batches = n
		}
	}
	return batches.Mul(yield).Floor(), nil
}

// DepletedBases ingredientes base (recorriendo compuestos anidados) con stock efectivo cero
// que alimentan al compuesto. Son los que hay que reabastecer para poder producirlo.
func (r *Resolver) DepletedBases(ctx context.Context, compoundID string) ([]*entity.Ingredient, error) {
	ing, err := r.ingredient(ctx, compoundID)
	if err != nil {
		return nil, err
	}
	var out []*entity.Ingredient
	seen := make(map[string]bool)
	if err := r.depletedBases(ctx, ing, newPath(), seen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) depletedBases(ctx context.Context, compound *entity.Ingredient, p *path, seen map[string]bool, out *[]*entity.Ingredient) error {
	if !compound.IsCompound {
		return nil
	}
	if err := p.push(compound, r.opts.MaxDepth); err != nil {
		return err
	}
	defer p.pop(compound)

	edges, err := r.compoundRecipe(ctx, compound.ID)
	if err != nil {
		return err
	}
	for _, e := range edges {
		base, err := r.ingredient(ctx, e.BaseIngredientID)
		if err != nil {
			return err
		}
		stock, err := r.effectiveStock(ctx, base, p)
		if err != nil {
			return err
		}
		if stock.IsPositive() {
			continue
		}
		if !seen[base.ID] {
			seen[base.ID] = true
			*out = append(*out, base)
		}
		if err := r.depletedBases(ctx, base, p, seen, out); err != nil {
			return err
		}
	}
	return nil
}
