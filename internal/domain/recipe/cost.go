package recipe

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// Unknown costo desconocido. Cualquier suma o producto con Unknown es Unknown.
var Unknown = decimal.NullDecimal{}

// AddCost suma dos costos respetando Unknown + x = Unknown.
func AddCost(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return Unknown
	}
	return decimal.NewNullDecimal(a.Decimal.Add(b.Decimal))
}

// MulCost multiplica un costo por una cantidad.
func MulCost(c decimal.NullDecimal, qty decimal.Decimal) decimal.NullDecimal {
	if !c.Valid {
		return Unknown
	}
	return decimal.NewNullDecimal(c.Decimal.Mul(qty))
}

// DivCost divide un costo por una cantidad positiva.
func DivCost(c decimal.NullDecimal, qty decimal.Decimal) decimal.NullDecimal {
	if !c.Valid {
		return Unknown
	}
	return decimal.NewNullDecimal(c.Decimal.Div(qty))
}

// LineCost detalle de costo por línea directa.
type LineCost struct {
	IngredientID   string
	IngredientName string
	QuantityNeeded decimal.Decimal
	UnitCost       decimal.NullDecimal
	Subtotal       decimal.NullDecimal
}

// CostBreakdown costo unitario de un producto. UnitCost inválido = desconocido;
// UnknownCostIngredients lista los ingredientes hoja sin costo que lo provocan.
type CostBreakdown struct {
	ProductID              string
	UnitCost               decimal.NullDecimal
	Lines                  []LineCost
	UnknownCostIngredients []string
}

type costResult struct {
	cost    decimal.NullDecimal
	unknown []string
}

// UnitCost suma cantidad × costo unitario sobre la receta directa, expandiendo compuestos
// como costo de lote / rendimiento. Recorre todo el grafo aunque ya haya un costo desconocido.
func (r *Resolver) UnitCost(ctx context.Context, productID string) (*CostBreakdown, error) {
	edges, err := r.recipes.ListByProduct(ctx, r.restaurantID, productID)
	if err != nil {
		return nil, err
	}
	out := &CostBreakdown{
		ProductID: productID,
		UnitCost:  decimal.NewNullDecimal(decimal.Zero),
		Lines:     make([]LineCost, 0, len(edges)),
	}
	seen := make(map[string]bool)
	for _, e := range edges {
		if !e.QuantityNeeded.IsPositive() {
			return nil, fmt.Errorf("%w: cantidad no positiva para ingrediente %s", domain.ErrInvalidRecipe, e.IngredientID)
		}
		ing, err := r.ingredient(ctx, e.IngredientID)
		if err != nil {
			return nil, err
		}
		res, err := r.ingredientCost(ctx, ing, newPath())
		if err != nil {
			return nil, err
		}
		subtotal := MulCost(res.cost, e.QuantityNeeded)
		out.Lines = append(out.Lines, LineCost{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			QuantityNeeded: e.QuantityNeeded,
			UnitCost:       res.cost,
			Subtotal:       subtotal,
		})
		out.UnitCost = AddCost(out.UnitCost, subtotal)
		for _, name := range res.unknown {
			if !seen[name] {
				seen[name] = true
				out.UnknownCostIngredients = append(out.UnknownCostIngredients, name)
			}
		}
	}
	return out, nil
}

// IngredientUnitCost costo por unidad de un ingrediente (compuesto o no).
func (r *Resolver) IngredientUnitCost(ctx context.Context, ingredientID string) (decimal.NullDecimal, error) {
	ing, err := r.ingredient(ctx, ingredientID)
	if err != nil {
		return Unknown, err
	}
	res, err := r.ingredientCost(ctx, ing, newPath())
	if err != nil {
		return Unknown, err
	}
	return res.cost, nil
}

func (r *Resolver) ingredientCost(ctx context.Context, ing *entity.Ingredient, p *path) (costResult, error) {
	if v, ok := r.costs[ing.ID]; ok {
		return v, nil
	}
	var res costResult
	if !ing.IsCompound {
		res = leafCost(ing)
		r.costs[ing.ID] = res
		return res, nil
	}
	if err := p.push(ing, r.opts.MaxDepth); err != nil {
		return costResult{}, err
	}
	defer p.pop(ing)

	edges, err := r.compoundRecipe(ctx, ing.ID)
	if err != nil {
		return costResult{}, err
	}
	if len(edges) == 0 {
		// compuesto sin receta registrada: se usa su propio costo
		res = leafCost(ing)
		r.costs[ing.ID] = res
		return res, nil
	}
	yield, err := BatchYield(ing, edges)
	if err != nil {
		return costResult{}, err
	}
	batch := decimal.NewNullDecimal(decimal.Zero)
	for _, e := range edges {
		base, err := r.ingredient(ctx, e.BaseIngredientID)
		if err != nil {
			return costResult{}, err
		}
		qty, err := BaseQuantity(e, base)
		if err != nil {
			return costResult{}, err
		}
		sub, err := r.ingredientCost(ctx, base, p)
		if err != nil {
			return costResult{}, err
		}
		batch = AddCost(batch, MulCost(sub.cost, qty))
		res.unknown = appendUnique(res.unknown, sub.unknown...)
	}
	res.cost = DivCost(batch, yield)
	r.costs[ing.ID] = res
	return res, nil
}

func leafCost(ing *entity.Ingredient) costResult {
	if !ing.CostPerUnit.Valid {
		return costResult{cost: Unknown, unknown: []string{ing.Name}}
	}
	return costResult{cost: ing.CostPerUnit}
}

func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		found := false
		for _, d := range dst {
			if d == it {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, it)
		}
	}
	return dst
}
