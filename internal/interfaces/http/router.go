package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/auth"
	"github.com/tu-usuario/estoque-pro/internal/application/billing"
	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AgentUC       *usecase.AgentUseCase
	LocationUC    *usecase.LocationUseCase
	BankAccountUC *usecase.BankAccountUseCase
	InventoryUC   *usecase.InventoryUseCase
	InvoiceUC     *billing.InvoiceUseCase
	EstimateUC    *billing.EstimateUseCase
	ReceivableUC  *billing.ReceivableUseCase
	StockEntryUC  *appstock.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Agents (protegido)
	agents := protected.Group("/agents")
	agentHandler := NewAgentHandler(deps.AgentUC, deps.InvoiceUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)
	agents.Get("/:id/pending-invoices", agentHandler.ListPendingInvoices)

	// Invoices de compra (protegido, sólo lectura)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Ubicaciones de estoque (protegido)
	locations := protected.Group("/stock-locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Inventario (protegido, sólo lectura; las altas pasan por el wizard)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/summary", inventoryHandler.Summary)

	// Wizard de entrada de estoque (protegido)
	entries := protected.Group("/stock-entries")
	stockEntryHandler := NewStockEntryHandler(deps.StockEntryUC)
	entries.Post("/", stockEntryHandler.Start)
	entries.Get("/:id", stockEntryHandler.Get)
	entries.Post("/:id/sheet", stockEntryHandler.UploadSheet)
	entries.Put("/:id/lots/:lotId", stockEntryHandler.MapLot)
	entries.Post("/:id/review", stockEntryHandler.Review)
	entries.Post("/:id/commit", stockEntryHandler.Commit)
	entries.Delete("/:id", stockEntryHandler.Abandon)

	// Estimates (protegido, sólo lectura + PDF)
	estimates := protected.Group("/estimates")
	estimateHandler := NewEstimateHandler(deps.EstimateUC)
	estimates.Get("/", estimateHandler.List)
	estimates.Get("/:id", estimateHandler.GetByID)
	estimates.Get("/:id/pdf", estimateHandler.GetPDF)

	// Cuentas a cobrar (protegido)
	receivables := protected.Group("/receivables")
	receivableHandler := NewReceivableHandler(deps.ReceivableUC)
	receivables.Get("/", receivableHandler.List)

	// Cuentas bancarias (protegido, sólo admin)
	bankAccounts := protected.Group("/bank-accounts", RequireRole(entity.RoleAdmin))
	bankAccountHandler := NewBankAccountHandler(deps.BankAccountUC)
	bankAccounts.Post("/", bankAccountHandler.Create)
	bankAccounts.Get("/", bankAccountHandler.List)
	bankAccounts.Delete("/:id", bankAccountHandler.Delete)
}
