package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc    *ledger.CustomerUseCase
	sales *ledger.SaleUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *ledger.CustomerUseCase, sales *ledger.SaleUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, sales: sales}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/customers (mayor deuda primero)
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.JSON(out)
}

// ListSales GET /api/customers/:id/sales
func (h *CustomerHandler) ListSales(c *fiber.Ctx) error {
	out, err := h.sales.ListByCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
