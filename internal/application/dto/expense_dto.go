package dto

import "time"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required,oneof=ingredientes fornecedores agua_luz_gas salarios aluguel manutencao outros"`
	Description   string  `json:"description" validate:"required,max=500"`
	Amount        string  `json:"amount" validate:"required,money"`
	PaymentStatus string  `json:"paymentStatus" validate:"omitempty,oneof=pago fiado parcial"`
	SupplierName  *string `json:"supplierName,omitempty" validate:"omitempty,max=200"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	SupplierID    *string   `json:"supplierId"`
	SupplierName  *string   `json:"supplierName"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
