package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidRecipe     = errors.New("receta inválida")
	ErrCyclicRecipe      = errors.New("receta cíclica")
	ErrRecipeTooDeep     = errors.New("receta excede la profundidad máxima")
	ErrNotCompound       = errors.New("el ingrediente no es compuesto")
)

// IngredientNotFoundError indica que una receta referencia un ingrediente sin registro.
// La disponibilidad no es confiable en ese caso, así que nunca se omite en silencio.
type IngredientNotFoundError struct {
	IngredientID string
}

func (e *IngredientNotFoundError) Error() string {
	return fmt.Sprintf("ingrediente %s no encontrado", e.IngredientID)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *IngredientNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CyclicRecipeError indica que el grafo de recetas compuestas contiene un ciclo.
// Path es la cadena de ingredientes recorrida, terminando en el ingrediente repetido.
type CyclicRecipeError struct {
	Path []string
}

func (e *CyclicRecipeError) Error() string {
	return "receta cíclica: " + strings.Join(e.Path, " -> ")
}

func (e *CyclicRecipeError) Is(target error) bool {
	return target == ErrCyclicRecipe
}

// InsufficientStockError se produce cuando una salida dejaría el stock en negativo.
type InsufficientStockError struct {
	IngredientID string
	Name         string
	Requested    decimal.Decimal
	Available    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: solicitado %s, disponible %s",
		e.Name, e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Shortfall es un faltante de un ingrediente base en una producción o venta.
type Shortfall struct {
	IngredientID string          `json:"ingredient_id"`
	Name         string          `json:"ingredient_name"`
	Required     decimal.Decimal `json:"required"`
	Available    decimal.Decimal `json:"available"`
}

// InsufficientIngredientsError lleva la lista completa de faltantes para que el usuario
// pueda reabastecer todo de una vez.
type InsufficientIngredientsError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientIngredientsError) Error() string {
	names := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		names = append(names, fmt.Sprintf("%s (requerido %s, disponible %s)",
			s.Name, s.Required.String(), s.Available.String()))
	}
	return "ingredientes insuficientes: " + strings.Join(names, ", ")
}

func (e *InsufficientIngredientsError) Is(target error) bool {
	return target == ErrInsufficientStock
}
