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

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/auth"
	"github.com/jhoicas/pos-retail-api/internal/application/order"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/application/report"
	"github.com/jhoicas/pos-retail-api/internal/application/usecase"
	inframail "github.com/jhoicas/pos-retail-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/pos-retail-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-retail-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-retail-api/internal/interfaces/http"
	"github.com/jhoicas/pos-retail-api/pkg/config"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
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

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Infraestructura de soporte
	mailer := inframail.NewSender(cfg.SMTP)
	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.Name)
	recorder := audit.NewRecorder(activityRepo, log)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, mailer, recorder,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.Policy{
			RememberTokenDays: cfg.Auth.RememberTokenDays,
			ResetTokenMinutes: cfg.Auth.ResetTokenMinutes,
			ResetBaseURL:      cfg.Auth.ResetBaseURL,
		},
	)
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, recorder)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, recorder)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, log)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	orderUC := order.NewUseCase(orderRepo, cartRepo, productRepo, userRepo, txRunner, receiptGen, recorder)
	quotationUC := quotation.NewUseCase(quotationRepo, supplierRepo, txRunner, mailer, recorder)
	reportUC := report.NewUseCase(reportRepo, settingsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware hace panic si el archivo no existe, así que solo se
	// monta cuando el JSON está presente; sin él la API arranca igual.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		ActivityUC:     activityUC,
		OrderUC:        orderUC,
		QuotationUC:    quotationUC,
		ReportUC:       reportUC,
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
