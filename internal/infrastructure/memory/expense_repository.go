package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación en memoria de ExpenseRepository.
type ExpenseRepo struct {
	access
}

func (r *ExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	defer r.write()()
	return r.s.expenses.insert(expense.ID, *expense)
}

func (r *ExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	defer r.read()()
	return r.s.expenses.get(id), nil
}

func (r *ExpenseRepo) List(_ context.Context) ([]*entity.Expense, error) {
	defer r.read()()
	return expensesNewestFirst(r.s.expenses.scan(nil)), nil
}

func (r *ExpenseRepo) ListByCategory(_ context.Context, category entity.ExpenseCategory) ([]*entity.Expense, error) {
	defer r.read()()
	return expensesNewestFirst(r.s.expenses.scan(func(e *entity.Expense) bool {
		return e.Category == category
	})), nil
}

func expensesNewestFirst(list []*entity.Expense) []*entity.Expense {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
