package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=40"`
}

// CustomerResponse cliente en respuestas. TotalDebt siempre con 2 decimales.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	TotalDebt string    `json:"totalDebt"`
	CreatedAt time.Time `json:"createdAt"`
}
