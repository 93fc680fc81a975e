package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/usecase"
)

// ExpenseHandler maneja las peticiones HTTP de gastos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/expenses?category=ingredientes
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID GET /api/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "gasto no encontrado")
	}
	return c.JSON(out)
}
