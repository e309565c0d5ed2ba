package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Availability *kitchen.AvailabilityUseCase
	Movements    *kitchen.MovementUseCase
	Production   *kitchen.ProductionUseCase
	Sales        *kitchen.SaleUseCase
	Ingredients  *kitchen.IngredientUseCase
	StockStatus  *kitchen.StockStatusUseCase
	Products     *kitchen.ProductUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con restaurant_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: catálogo antes de /:id para que "availability" no se tome como id
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Products)
	availabilityHandler := NewAvailabilityHandler(deps.Availability)
	products.Get("/availability", availabilityHandler.Catalog)
	products.Post("/", productHandler.Create)
	products.Put("/:id/recipe", productHandler.SetRecipe)
	products.Get("/:id/availability", availabilityHandler.Availability)
	products.Get("/:id/cost", availabilityHandler.Cost)

	// Ingredients
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.Ingredients, deps.StockStatus)
	inventoryHandler := NewInventoryHandler(deps.Movements)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/status", ingredientHandler.Status)
	ingredients.Put("/:id/recipe", ingredientHandler.SetRecipe)
	ingredients.Get("/:id/movements", inventoryHandler.History)

	// Inventory movements
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Producción interna
	production := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.Production)
	production.Post("/", productionHandler.Produce)
	production.Get("/:id", productionHandler.GetByID)
	production.Get("/:id/sheet", productionHandler.Sheet)

	// Ventas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Sales)
	sales.Post("/", saleHandler.Record)
}
