package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
	"github.com/jhoicas/tempero-api/internal/application/auth"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *ledger.CustomerUseCase
	SaleUC      *ledger.SaleUseCase
	SupplierUC  *usecase.SupplierUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	SummaryUC   *analytics.SummaryUseCase
	ReportUC    *analytics.ReportUseCase
	AuthUC      *auth.AuthUseCase // nil = sin login
	AuthEnabled bool
	JWTSecret   string
	ServiceName string
	Storage     string // driver activo, reportado en /health
}

// Router registra /health y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName, "storage": deps.Storage})
	})

	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	// Con auth activa, cada grupo exige Bearer Token.
	var guard []fiber.Handler
	if deps.AuthEnabled {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
	}

	customers := api.Group("/customers", guard...)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SaleUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/sales", customerHandler.ListSales)

	suppliers := api.Group("/suppliers", guard...)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)

	sales := api.Group("/sales", guard...)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id/payment", saleHandler.AmendPayment)

	expenses := api.Group("/expenses", guard...)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", expenseHandler.GetByID)

	analyticsGroup := api.Group("/analytics", guard...)
	analyticsHandler := NewAnalyticsHandler(deps.SummaryUC, deps.ReportUC)
	analyticsGroup.Get("/summary", analyticsHandler.Summary)
	analyticsGroup.Get("/expenses-by-category", analyticsHandler.ExpensesByCategory)
	analyticsGroup.Get("/report.pdf", analyticsHandler.ReportPDF)
}
