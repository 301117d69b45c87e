package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/auth"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/billing"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/inventory"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/usecase"
	infrapdf "github.com/MrRohit-01/barcode-stock-system/internal/infrastructure/pdf"
	"github.com/MrRohit-01/barcode-stock-system/internal/infrastructure/postgres"
	httpRouter "github.com/MrRohit-01/barcode-stock-system/internal/interfaces/http"
	"github.com/MrRohit-01/barcode-stock-system/pkg/config"
	"github.com/MrRohit-01/barcode-stock-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner, productRepo, movementRepo)

	taxRate := decimal.NewFromFloat(cfg.Billing.TaxRatePct)
	checkoutUC := billing.NewCheckoutUseCase(txRunner, recordMovementUC, transactionRepo, taxRate)

	store := billing.StoreInfo{
		Name:    cfg.Billing.StoreName,
		Address: cfg.Billing.StoreAddress,
		Phone:   cfg.Billing.StorePhone,
	}
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := billing.NewReceiptUseCase(transactionRepo, userRepo, receiptGenerator, store)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		RecordMovement: recordMovementUC,
		CheckoutUC:     checkoutUC,
		ReceiptUC:      receiptUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
