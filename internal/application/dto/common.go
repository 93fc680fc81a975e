package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError regla de validación incumplida por un campo del cuerpo.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
