package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/application/usecase"
	"github.com/jhoicas/tempero-api/internal/infrastructure/memory"
)

func str(s string) *string { return &s }

type fakeGenerator struct {
	got *dto.FinancialReportDTO
	err error
}

func (f *fakeGenerator) GenerateFinancialReport(r *dto.FinancialReportDTO) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func seed(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()
	sales := ledger.NewSaleUseCase(memory.NewTxRunner(store), store.Sales())
	expenses := usecase.NewExpenseUseCase(store.Expenses(), store.Suppliers())

	for _, in := range []dto.CreateSaleRequest{
		{CustomerName: "Ana", Description: "PF", Amount: "100", PaymentStatus: "pago"},
		{CustomerName: "Bia", Description: "Marmita", Amount: "50", PaymentStatus: "fiado"},
		{CustomerName: "Caio", Description: "Almoço", Amount: "90", PaymentStatus: "parcial", PaidAmount: str("30")},
	} {
		_, err := sales.Create(ctx, in)
		require.NoError(t, err)
	}
	for _, in := range []dto.CreateExpenseRequest{
		{Category: "ingredientes", Description: "Carne", Amount: "60"},
		{Category: "agua_luz_gas", Description: "Gás", Amount: "25.50"},
	} {
		_, err := expenses.Create(ctx, in)
		require.NoError(t, err)
	}
}

func TestSummary_Escenario(t *testing.T) {
	store := memory.NewStore()
	seed(t, store)
	uc := analytics.NewSummaryUseCase(store.Sales(), store.Expenses())

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.SummaryDTO{
		TotalSales:    "240.00",
		TotalReceived: "130.00",
		TotalPending:  "110.00",
		TotalExpenses: "85.50",
		NetProfit:     "44.50",
	}, got)

	cats, err := uc.ExpensesByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryTotalDTO{
		{Category: "ingredientes", Total: "60.00"},
		{Category: "agua_luz_gas", Total: "25.50"},
	}, cats)
}

func TestSummary_StoreVacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewSummaryUseCase(store.Sales(), store.Expenses())

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.TotalSales)
	assert.Equal(t, "0.00", got.NetProfit)

	cats, err := uc.ExpensesByCategory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestReport_Deudores(t *testing.T) {
	store := memory.NewStore()
	seed(t, store)
	gen := &fakeGenerator{}
	summary := analytics.NewSummaryUseCase(store.Sales(), store.Expenses())
	uc := analytics.NewReportUseCase(summary, store.Customers(), gen, "Relatório")

	pdf, filename, err := uc.RenderPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, filename, "relatorio-")

	require.NotNil(t, gen.got)
	require.Len(t, gen.got.Debtors, 2)
	assert.Equal(t, "Caio", gen.got.Debtors[0].Name)
	assert.Equal(t, "60.00", gen.got.Debtors[0].TotalDebt)
	assert.Equal(t, "Bia", gen.got.Debtors[1].Name)
	assert.Equal(t, "44.50", gen.got.Summary.NetProfit)
}

func TestReport_ErrorDelGenerador(t *testing.T) {
	store := memory.NewStore()
	summary := analytics.NewSummaryUseCase(store.Sales(), store.Expenses())
	uc := analytics.NewReportUseCase(summary, store.Customers(), &fakeGenerator{err: errors.New("boom")}, "x")

	_, _, err := uc.RenderPDF(context.Background())
	assert.Error(t, err)
}
