package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
)

// SaleHandler maneja ventas y enmiendas de pago.
type SaleHandler struct {
	uc *ledger.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *ledger.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Resuelve el cliente por nombre (lo crea si no existe) y, si la venta
//               es fiado o parcial, suma lo pendiente a su deuda.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	return c.JSON(out)
}

// AmendPayment godoc
// @Summary      Enmendar pago de una venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la venta"
// @Param        body  body  dto.AmendPaymentRequest  true  "Nuevo estado y monto pagado"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/payment [patch]
func (h *SaleHandler) AmendPayment(c *fiber.Ctx) error {
	var in dto.AmendPaymentRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.AmendPayment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	return c.JSON(out)
}
