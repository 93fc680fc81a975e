package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, supplier_id, supplier_name, category, description, amount, payment_status, created_at`

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, supplier_id, supplier_name, category, description, amount, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.SupplierID, e.SupplierName, string(e.Category), e.Description,
		e.Amount, string(e.PaymentStatus), e.CreatedAt,
	)
	if err != nil {
		return writeErr("insert expense", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List lista gastos, el más reciente primero.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY created_at DESC, seq DESC`)
}

// ListByCategory lista los gastos de una categoría, el más reciente primero.
func (r *ExpenseRepo) ListByCategory(ctx context.Context, category entity.ExpenseCategory) ([]*entity.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE category = $1 ORDER BY created_at DESC, seq DESC`, string(category))
}

func (r *ExpenseRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var (
		e        entity.Expense
		category string
		status   string
	)
	err := row.Scan(&e.ID, &e.SupplierID, &e.SupplierName, &category,
		&e.Description, &e.Amount, &status, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Category = entity.ExpenseCategory(category)
	e.PaymentStatus = entity.PaymentStatus(status)
	return &e, nil
}
