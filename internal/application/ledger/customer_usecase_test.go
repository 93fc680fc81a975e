package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain"
)

func TestCustomer_CreateExplicito(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Ana", Phone: str("11 99999-0000")})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "0.00", out.TotalDebt)
	require.NotNil(t, out.Phone)

	// Una venta posterior con el mismo nombre reutiliza el cliente.
	s := f.sale(t, "ana", "12.5", "fiado", nil)
	assert.Equal(t, out.ID, s.CustomerID)
	assert.Equal(t, "12.50", f.debtOf(t, out.ID))

	_, err = f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomer_ListPorDeuda(t *testing.T) {
	f := newFixture()
	f.sale(t, "Ana", "5", "fiado", nil)
	f.sale(t, "Bia", "50", "fiado", nil)
	f.sale(t, "Caio", "20", "pago", nil)

	list, err := f.customers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bia", list[0].Name)
	assert.Equal(t, "Ana", list[1].Name)
	assert.Equal(t, "Caio", list[2].Name)
}
