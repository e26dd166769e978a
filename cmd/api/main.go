package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retailflow-erp/internal/interfaces/http"
	"github.com/tu-usuario/retailflow-erp/pkg/config"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	salesRepo := postgres.NewSalesOrderRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	cashFlowUC := appforecast.NewCashFlowUseCase(txRepo, salesRepo, purchaseRepo)
	reorderUC := appforecast.NewReorderUseCase(productRepo, movementRepo, salesRepo)
	customerHealthUC := appforecast.NewCustomerHealthUseCase(customerRepo, salesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RetailFlow API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CashFlowUC:       cashFlowUC,
		ReorderUC:        reorderUC,
		CustomerHealthUC: customerHealthUC,
		Logger:           log,
		MetricsEnabled:   cfg.Metrics.Enabled,
	})

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
