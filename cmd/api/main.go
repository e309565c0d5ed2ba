package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Recetario-api/docs"
	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
	"github.com/jhoicas/Recetario-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Recetario-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Recetario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Recetario-api/internal/interfaces/http"
	"github.com/jhoicas/Recetario-api/pkg/config"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var txRunner kitchen.TxRunner
	switch cfg.App.StoreDriver {
	case "memory":
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		txRunner = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		txRunner = postgres.NewTxRunner(pool)
	}

	settings := kitchen.Settings{
		EmptyRecipePolicy:  recipe.EmptyRecipePolicy(cfg.Kitchen.EmptyRecipePolicy),
		AllowNegativeStock: cfg.Kitchen.AllowNegativeStock,
		MaxDepth:           cfg.Kitchen.RecipeMaxDepth,
		CatalogConcurrency: cfg.Kitchen.CatalogConcurrency,
	}

	// PDF: hoja de producción de cada lote
	sheetGenerator := infrapdf.NewMarotoSheetGenerator(cfg.App.Name)

	deps := httpRouter.RouterDeps{
		Availability: kitchen.NewAvailabilityUseCase(txRunner, settings, log),
		Movements:    kitchen.NewMovementUseCase(txRunner, settings, log),
		Production:   kitchen.NewProductionUseCase(txRunner, settings, sheetGenerator, log),
		Sales:        kitchen.NewSaleUseCase(txRunner, settings, log),
		Ingredients:  kitchen.NewIngredientUseCase(txRunner, settings, log),
		StockStatus:  kitchen.NewStockStatusUseCase(txRunner, settings, log),
		Products:     kitchen.NewProductUseCase(txRunner, log),
		JWTSecret:    cfg.JWT.Secret,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	specPath, err := writeSwaggerSpec()
	if err != nil {
		log.Error().Err(err).Msg("swagger deshabilitado")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Recetario API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// writeSwaggerSpec vuelca el documento registrado por swag a un archivo para el middleware de Swagger UI.
func writeSwaggerSpec() (string, error) {
	path := filepath.Join(os.TempDir(), "recetario-swagger.json")
	if err := os.WriteFile(path, []byte(docs.SwaggerInfo.ReadDoc()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
