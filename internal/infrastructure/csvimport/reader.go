// Package csvimport lee planillas de gastos exportadas de hojas de cálculo.
//
// Formato: separador ';', primera línea de encabezado, columnas
//
//	categoria;descricao;valor[;fornecedor[;status]]
//
// El valor acepta coma decimal ("45,50"). Los archivos de Excel en Windows
// suelen venir en ISO-8859-1; con Latin1=true se decodifican a UTF-8.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/tempero-api/internal/application/dto"
)

// Options opciones de lectura.
type Options struct {
	Latin1 bool // forzar ISO-8859-1
}

// Row gasto leído junto con su línea en el archivo (para reportar errores).
type Row struct {
	Line    int
	Expense dto.CreateExpenseRequest
}

// Read parsea todo el contenido. Una línea mal formada corta la lectura con
// error indicando su número.
func Read(r io.Reader, opts Options) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	var src io.Reader = bytes.NewReader(raw)
	if opts.Latin1 || !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}
		if blank(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperaban al menos 3 columnas, hay %d", line, len(rec))
		}
		exp := dto.CreateExpenseRequest{
			Category:    strings.ToLower(strings.TrimSpace(rec[0])),
			Description: strings.TrimSpace(rec[1]),
			Amount:      normalizeAmount(rec[2]),
		}
		if len(rec) > 3 {
			if s := strings.TrimSpace(rec[3]); s != "" {
				exp.SupplierName = &s
			}
		}
		if len(rec) > 4 {
			exp.PaymentStatus = strings.ToLower(strings.TrimSpace(rec[4]))
		}
		rows = append(rows, Row{Line: line, Expense: exp})
	}
	return rows, nil
}

// normalizeAmount "1.234,50" -> "1234.50"; "45,5" -> "45.5"; "R$ 10" -> "10".
func normalizeAmount(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
