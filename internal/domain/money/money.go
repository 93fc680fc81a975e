// Package money centraliza el manejo de montos: siempre decimal de punto fijo
// con 2 decimales, nunca float64.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Places cantidad de decimales con que se guardan y exponen los montos.
const Places = 2

// MaxIntegerDigits dígitos enteros admitidos en un monto: cabe en NUMERIC(10,2).
const MaxIntegerDigits = 8

// amountPattern formato aceptado en la frontera: "10", "10.", "10.5", "10.50".
var amountPattern = regexp.MustCompile(`^\d+\.?\d{0,2}$`)

// Valid indica si s tiene el formato de monto aceptado y no supera
// MaxIntegerDigits en la parte entera.
func Valid(s string) bool {
	if !amountPattern.MatchString(s) {
		return false
	}
	integer, _, _ := strings.Cut(s, ".")
	return len(integer) <= MaxIntegerDigits
}

// Parse convierte el texto de un monto a decimal redondeado a 2 lugares.
func Parse(s string) (decimal.Decimal, error) {
	if !Valid(s) {
		return decimal.Zero, fmt.Errorf("monto inválido %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido %q: %w", s, err)
	}
	return d.Round(Places), nil
}

// ParseOptional devuelve nil si s está vacío.
func ParseOptional(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Format representación de texto con exactamente 2 decimales ("100.00").
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// Round redondea a 2 decimales.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}
