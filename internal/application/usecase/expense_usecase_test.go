package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/usecase"
	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/internal/infrastructure/memory"
)

func str(s string) *string { return &s }

func TestExpense_EnlazaProveedorPorNombre(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	suppliers := usecase.NewSupplierUseCase(store.Suppliers())
	expenses := usecase.NewExpenseUseCase(store.Expenses(), store.Suppliers())

	sup, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Hortifruti Central", Category: str("verduras")})
	require.NoError(t, err)

	linked, err := expenses.Create(ctx, dto.CreateExpenseRequest{
		Category:     "ingredientes",
		Description:  "Tomate",
		Amount:       "45.9",
		SupplierName: str("hortifruti central"),
	})
	require.NoError(t, err)
	require.NotNil(t, linked.SupplierID)
	assert.Equal(t, sup.ID, *linked.SupplierID)
	assert.Equal(t, "45.90", linked.Amount)
	assert.Equal(t, "pago", linked.PaymentStatus)

	loose, err := expenses.Create(ctx, dto.CreateExpenseRequest{
		Category:     "outros",
		Description:  "Gelo",
		Amount:       "10",
		SupplierName: str("Sorveteria"),
	})
	require.NoError(t, err)
	assert.Nil(t, loose.SupplierID)
	require.NotNil(t, loose.SupplierName)
	assert.Equal(t, "Sorveteria", *loose.SupplierName)
}

func TestExpense_ListPorCategoria(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	expenses := usecase.NewExpenseUseCase(store.Expenses(), store.Suppliers())

	for _, in := range []dto.CreateExpenseRequest{
		{Category: "aluguel", Description: "Aluguel março", Amount: "1500"},
		{Category: "ingredientes", Description: "Arroz", Amount: "80"},
		{Category: "ingredientes", Description: "Feijão", Amount: "60"},
	} {
		_, err := expenses.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := expenses.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ing, err := expenses.List(ctx, "ingredientes")
	require.NoError(t, err)
	require.Len(t, ing, 2)
	assert.Equal(t, "Feijão", ing[0].Description)
	assert.Equal(t, "Arroz", ing[1].Description)

	none, err := expenses.List(ctx, "salarios")
	require.NoError(t, err)
	assert.Empty(t, none)

	unknown, err := expenses.List(ctx, "impostos")
	require.NoError(t, err)
	require.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestExpense_Validacion(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	expenses := usecase.NewExpenseUseCase(store.Expenses(), store.Suppliers())

	_, err := expenses.Create(ctx, dto.CreateExpenseRequest{Category: "impostos", Description: "x", Amount: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = expenses.Create(ctx, dto.CreateExpenseRequest{Category: "outros", Description: "x", Amount: "-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = expenses.Create(ctx, dto.CreateExpenseRequest{Category: "outros", Description: "", Amount: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = expenses.GetByID(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplier_CreateGetList(t *testing.T) {
	ctx := context.Background()
	suppliers := usecase.NewSupplierUseCase(memory.NewStore().Suppliers())

	a, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Açougue Boi Bom"})
	require.NoError(t, err)
	b, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Padaria", Phone: str("3333-0000")})
	require.NoError(t, err)

	got, err := suppliers.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Açougue Boi Bom", got.Name)
	assert.Nil(t, got.Category)

	list, err := suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)

	_, err = suppliers.GetByID(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = suppliers.Create(ctx, dto.CreateSupplierRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
