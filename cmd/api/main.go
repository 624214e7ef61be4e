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
	"github.com/tu-usuario/estoque-pro/internal/application/auth"
	"github.com/tu-usuario/estoque-pro/internal/application/billing"
	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/estoque-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/estoque-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/estoque-pro/internal/infrastructure/spreadsheet"
	httpRouter "github.com/tu-usuario/estoque-pro/internal/interfaces/http"
	"github.com/tu-usuario/estoque-pro/pkg/config"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	locationRepo := postgres.NewStockLocationRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	agentUC := usecase.NewAgentUseCase(agentRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	bankAccountUC := usecase.NewBankAccountUseCase(bankAccountRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, inventoryRepo)
	receivableUC := billing.NewReceivableUseCase(receivableRepo)

	// PDF: representación gráfica del estimate back-to-back
	pdfGenerator := infrapdf.NewMarotoEstimateGenerator(cfg.App.Name)
	estimateUC := billing.NewEstimateUseCase(estimateRepo, agentRepo, pdfGenerator)

	// Wizard de entrada de estoque: planillas (.xlsx/.xls/.csv) + reconciliación
	sheetReader := spreadsheet.NewReader()
	stockEntryUC := appstock.NewUseCase(
		agentRepo, invoiceRepo, inventoryRepo, locationRepo,
		sheetReader, txRunner, cfg.Stock.B2BMarkup,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AgentUC:       agentUC,
		LocationUC:    locationUC,
		BankAccountUC: bankAccountUC,
		InventoryUC:   inventoryUC,
		InvoiceUC:     invoiceUC,
		EstimateUC:    estimateUC,
		ReceivableUC:  receivableUC,
		StockEntryUC:  stockEntryUC,
		JWTSecret:     cfg.JWT.Secret,
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
