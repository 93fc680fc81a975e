package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	_ "go.uber.org/automaxprocs"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
	"github.com/jhoicas/tempero-api/internal/application/auth"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tempero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tempero-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tempero-api/internal/interfaces/http"
	"github.com/jhoicas/tempero-api/pkg/config"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Bool("auth", cfg.Auth.Enabled).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	customerUC := ledger.NewCustomerUseCase(repos.Customers)
	saleUC := ledger.NewSaleUseCase(repos.Tx, repos.Sales)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers)
	expenseUC := usecase.NewExpenseUseCase(repos.Expenses, repos.Suppliers)
	summaryUC := analytics.NewSummaryUseCase(repos.Sales, repos.Expenses)

	// PDF: reporte financiero exportable
	reportUC := analytics.NewReportUseCase(
		summaryUC, repos.Customers, infrapdf.NewMarotoReportGenerator(cfg.App.Name), "Relatório financeiro",
	)

	var authUC *auth.AuthUseCase
	if cfg.Auth.Enabled {
		authUC, err = auth.NewAuthUseCase(
			auth.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password},
			auth.JWTConfig{
				Secret:     cfg.JWT.Secret,
				ExpMinutes: cfg.JWT.Expiration,
				Issuer:     cfg.JWT.Issuer,
			},
		)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar auth")
		}
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name}, log)

	// Swagger UI en http://localhost:<port>/docs, solo si el documento existe.
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Tempero API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: documento no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		SupplierUC:  supplierUC,
		ExpenseUC:   expenseUC,
		SummaryUC:   summaryUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		AuthEnabled: cfg.Auth.Enabled,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
		Storage:     repos.Driver,
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
