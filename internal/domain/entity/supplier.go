package entity

import "time"

// Supplier proveedor registrado. Inmutable después de creado.
type Supplier struct {
	ID        string
	Name      string
	Phone     *string
	Category  *string
	CreatedAt time.Time
}
