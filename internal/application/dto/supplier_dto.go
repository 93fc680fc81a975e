package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
