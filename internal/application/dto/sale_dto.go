package dto

import "time"

// CreateSaleRequest body para POST /api/sales.
// El cliente se resuelve por nombre; si no existe se crea.
// PaymentStatus vacío equivale a "pago".
type CreateSaleRequest struct {
	CustomerName  string  `json:"customerName" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required,max=500"`
	Amount        string  `json:"amount" validate:"required,money"`
	PaymentStatus string  `json:"paymentStatus" validate:"omitempty,oneof=pago fiado parcial"`
	PaidAmount    *string `json:"paidAmount,omitempty" validate:"omitempty,money_or_empty"`
}

// AmendPaymentRequest body para PATCH /api/sales/:id/payment.
// Sin paidAmount se conserva el monto pagado actual.
type AmendPaymentRequest struct {
	Status     string  `json:"status" validate:"required,oneof=pago fiado parcial"`
	PaidAmount *string `json:"paidAmount,omitempty" validate:"omitempty,money_or_empty"`
}

// SaleResponse venta en respuestas.
type SaleResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	PaymentStatus string    `json:"paymentStatus"`
	PaidAmount    string    `json:"paidAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}
