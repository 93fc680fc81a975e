package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/tempero-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isNumericOverflow verifica si un valor no cabe en la columna NUMERIC (22003).
func isNumericOverflow(err error) bool {
	return pgCode(err) == "22003"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// writeErr traduce los errores de escritura a los sentinels del dominio.
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isNumericOverflow(err):
		return fmt.Errorf("%w: %s: monto fuera de rango", domain.ErrInvalidInput, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
