package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/infrastructure/memory"
)

func customer(id, name, debt string) *entity.Customer {
	return &entity.Customer{
		ID:        id,
		Name:      name,
		TotalDebt: decimal.RequireFromString(debt),
		CreatedAt: time.Now(),
	}
}

func TestCustomerRepo_CreateGetYNoSobrescribe(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	require.NoError(t, repo.Create(ctx, customer("c1", "Maria", "0")))
	err := repo.Create(ctx, customer("c1", "Otra", "0"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Maria", got.Name)

	missing, err := repo.GetByID(ctx, "no-es-un-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	require.NoError(t, repo.Create(ctx, customer("c1", "Maria", "10")))

	got, _ := repo.GetByID(ctx, "c1")
	got.TotalDebt = decimal.NewFromInt(999)

	again, _ := repo.GetByID(ctx, "c1")
	assert.Equal(t, "10", again.TotalDebt.String())
}

func TestCustomerRepo_GetByNameSinMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	require.NoError(t, repo.Create(ctx, customer("c1", "José", "0")))

	got, err := repo.GetByName(ctx, "JOSÉ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)

	none, err := repo.GetByName(ctx, "Josefa")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCustomerRepo_ListOrdenaPorDeudaDesc(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	require.NoError(t, repo.Create(ctx, customer("a", "A", "5")))
	require.NoError(t, repo.Create(ctx, customer("b", "B", "50.10")))
	require.NoError(t, repo.Create(ctx, customer("c", "C", "0")))
	require.NoError(t, repo.Create(ctx, customer("d", "D", "12")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].TotalDebt.GreaterThanOrEqual(list[i].TotalDebt))
	}
}

func TestCustomerRepo_UpdateDebtInexistenteNoFalla(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	assert.NoError(t, repo.UpdateDebt(ctx, "fantasma", decimal.NewFromInt(10)))

	list, _ := repo.List(ctx)
	assert.Empty(t, list)
}

func TestSaleRepo_ListMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Sales()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.Create(ctx, &entity.Sale{
			ID:         id,
			CustomerID: "c1",
			Amount:     decimal.NewFromInt(10),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "otro", CustomerID: "c2", CreatedAt: base}))

	list, err := repo.ListByCustomer(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "s3", list[0].ID)
	assert.Equal(t, "s1", list[2].ID)

	all, _ := repo.List(ctx)
	assert.Len(t, all, 4)
}

func TestSaleRepo_UpdatePayment(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Sales()
	require.NoError(t, repo.Create(ctx, &entity.Sale{
		ID:            "s1",
		Amount:        decimal.NewFromInt(100),
		PaymentStatus: entity.PaymentFiado,
		PaidAmount:    decimal.Zero,
	}))

	require.NoError(t, repo.UpdatePayment(ctx, "s1", entity.PaymentParcial, decimal.NewFromInt(40)))
	require.NoError(t, repo.UpdatePayment(ctx, "nada", entity.PaymentPago, decimal.NewFromInt(1)))

	got, _ := repo.GetByID(ctx, "s1")
	assert.Equal(t, entity.PaymentParcial, got.PaymentStatus)
	assert.Equal(t, "40", got.PaidAmount.String())
}

func TestExpenseRepo_ListByCategory(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Expenses()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Expense{ID: "e1", Category: entity.CategoryAluguel, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Expense{ID: "e2", Category: entity.CategoryOutros, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Expense{ID: "e3", Category: entity.CategoryAluguel, CreatedAt: base.Add(2 * time.Hour)}))

	list, err := repo.ListByCategory(ctx, entity.CategoryAluguel)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e3", list[0].ID)
	assert.Equal(t, "e1", list[1].ID)
}

func TestSupplierRepo_ListYNombre(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Suppliers()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Supplier{ID: "p1", Name: "Hortifruti Silva", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Supplier{ID: "p2", Name: "Açougue Central", CreatedAt: base.Add(time.Hour)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ID)

	got, err := repo.GetByName(ctx, "hortifruti silva")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ID)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := memory.NewTxRunner(s).Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
