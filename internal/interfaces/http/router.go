package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/auth"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/billing"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/inventory"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/usecase"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	RecordMovement *inventory.RecordMovementUseCase
	CheckoutUC     *billing.CheckoutUseCase
	ReceiptUC      *billing.ReceiptUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Reglas de acceso por rol:
//   - admin y staff gestionan catálogo e inventario.
//   - admin y cashier operan la caja (checkout y recibos).
//   - cualquier usuario autenticado puede consultar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	catalogWrite := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	cashier := RequireRole(entity.RoleAdmin, entity.RoleCashier)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", catalogWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/check-sku/:sku", productHandler.CheckSKU)
	products.Get("/:id/barcode", productHandler.BarcodePNG)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", catalogWrite, productHandler.Update)
	products.Delete("/:id", catalogWrite, productHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement)
	invGroup.Post("/movement", catalogWrite, inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/low-stock", catalogWrite, inventoryHandler.LowStock)

	// Billing (protegido, caja)
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.CheckoutUC, deps.ReceiptUC)
	billingGroup.Post("/transaction", cashier, billingHandler.CreateTransaction)
	billingGroup.Get("/transactions", billingHandler.ListTransactions)
	billingGroup.Get("/transaction/:id/receipt", cashier, billingHandler.DownloadReceipt)
	billingGroup.Get("/transaction/:id", billingHandler.GetTransaction)
}
