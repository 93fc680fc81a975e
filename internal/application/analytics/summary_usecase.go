package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/money"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// SummaryUseCase expone el resumen financiero y los gastos por categoría.
type SummaryUseCase struct {
	sales    repository.SaleRepository
	expenses repository.ExpenseRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(sales repository.SaleRepository, expenses repository.ExpenseRepository) *SummaryUseCase {
	return &SummaryUseCase{sales: sales, expenses: expenses}
}

// GetSummary carga ventas y gastos en paralelo y devuelve los cinco totales.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryDTO(Compute(sales, expenses)), nil
}

// ExpensesByCategory devuelve [{category, total}] de las categorías con gastos.
func (uc *SummaryUseCase) ExpensesByCategory(ctx context.Context) ([]dto.CategoryTotalDTO, error) {
	expenses, err := uc.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: listar gastos: %w", err)
	}
	return toCategoryDTOs(ByCategory(expenses)), nil
}

func (uc *SummaryUseCase) load(ctx context.Context) ([]*entity.Sale, []*entity.Expense, error) {
	var (
		sales    []*entity.Sale
		expenses []*entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sales, err = uc.sales.List(gctx); err != nil {
			return fmt.Errorf("analytics: listar ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = uc.expenses.List(gctx); err != nil {
			return fmt.Errorf("analytics: listar gastos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sales, expenses, nil
}

func toSummaryDTO(t Totals) *dto.SummaryDTO {
	return &dto.SummaryDTO{
		TotalSales:    money.Format(t.Sales),
		TotalReceived: money.Format(t.Received),
		TotalPending:  money.Format(t.Pending),
		TotalExpenses: money.Format(t.Expenses),
		NetProfit:     money.Format(t.Net),
	}
}

func toCategoryDTOs(list []CategoryTotal) []dto.CategoryTotalDTO {
	out := make([]dto.CategoryTotalDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryTotalDTO{Category: string(c.Category), Total: money.Format(c.Total)})
	}
	return out
}
