package http

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/application/dto"
)

func TestMustRegister_TagInvalidoEntraEnPanico(t *testing.T) {
	v := validator.New()
	assert.Panics(t, func() {
		mustRegister(v, "", func(validator.FieldLevel) bool { return true })
	})
}

func TestNewValidator_TagsDeMonto(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	ok := dto.CreateSaleRequest{CustomerName: "Ana", Description: "PF", Amount: "10.50", PaymentStatus: "fiado"}
	assert.NoError(t, v.Struct(ok))

	big := ok
	big.Amount = "100000000000000000"
	assert.Error(t, v.Struct(big))

	paid := ""
	ok.PaidAmount = &paid
	assert.NoError(t, v.Struct(ok), "paidAmount vacío equivale a omitirlo")
}
