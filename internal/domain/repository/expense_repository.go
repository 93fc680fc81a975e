package repository

import (
	"context"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	// List y ListByCategory ordenan por CreatedAt descendente.
	List(ctx context.Context) ([]*entity.Expense, error)
	ListByCategory(ctx context.Context, category entity.ExpenseCategory) ([]*entity.Expense, error)
}
