package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/money"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos. Los gastos no tocan la deuda de
// ningún cliente; solo alimentan la analítica.
type ExpenseUseCase struct {
	repo      repository.ExpenseRepository
	suppliers repository.SupplierRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, suppliers repository.SupplierRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, suppliers: suppliers}
}

// Create registra un gasto. Si SupplierName coincide (sin distinguir
// mayúsculas) con un proveedor registrado, el gasto queda enlazado a su ID.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	category := entity.ExpenseCategory(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: category %q", domain.ErrInvalidInput, in.Category)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description es requerido", domain.ErrInvalidInput)
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	status := entity.PaymentStatus(in.PaymentStatus)
	if status == "" {
		status = entity.PaymentPago
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: paymentStatus %q", domain.ErrInvalidInput, in.PaymentStatus)
	}

	var supplierName, supplierID *string
	if in.SupplierName != nil && strings.TrimSpace(*in.SupplierName) != "" {
		name := *in.SupplierName
		supplierName = &name
		supplier, err := uc.suppliers.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("buscar proveedor: %w", err)
		}
		if supplier != nil {
			id := supplier.ID
			supplierID = &id
		}
	}

	expense := &entity.Expense{
		ID:            uuid.New().String(),
		SupplierID:    supplierID,
		SupplierName:  supplierName,
		Category:      category,
		Description:   in.Description,
		Amount:        amount,
		PaymentStatus: status,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("crear gasto: %w", err)
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto; domain.ErrNotFound si no existe.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener gasto: %w", err)
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos, el más reciente primero. Con category != "" filtra por
// esa categoría.
func (uc *ExpenseUseCase) List(ctx context.Context, category string) ([]*dto.ExpenseResponse, error) {
	var (
		list []*entity.Expense
		err  error
	)
	if category == "" {
		list, err = uc.repo.List(ctx)
	} else {
		// una categoría fuera del enum no coincide con ningún gasto.
		c := entity.ExpenseCategory(category)
		if !c.Valid() {
			return []*dto.ExpenseResponse{}, nil
		}
		list, err = uc.repo.ListByCategory(ctx, c)
	}
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		SupplierID:    e.SupplierID,
		SupplierName:  e.SupplierName,
		Category:      string(e.Category),
		Description:   e.Description,
		Amount:        money.Format(e.Amount),
		PaymentStatus: string(e.PaymentStatus),
		CreatedAt:     e.CreatedAt,
	}
}
