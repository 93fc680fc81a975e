package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, total_debt, created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, name_key, phone, total_debt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, entity.NameKey(customer.Name), customer.Phone,
		customer.TotalDebt, customer.CreatedAt,
	)
	if err != nil {
		return writeErr("insert customer", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByName busca el primer cliente registrado con ese nombre (sin distinguir mayúsculas).
func (r *CustomerRepo) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE name_key = $1 ORDER BY seq LIMIT 1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, entity.NameKey(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by name: %w", err)
	}
	return c, nil
}

// List lista clientes por deuda descendente.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY total_debt DESC, seq DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateDebt reemplaza la deuda del cliente; si no existe no hace nada.
func (r *CustomerRepo) UpdateDebt(ctx context.Context, id string, debt decimal.Decimal) error {
	if _, err := r.q.Exec(ctx, `UPDATE customers SET total_debt = $2 WHERE id = $1`, id, debt); err != nil {
		return writeErr("update customer debt", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.TotalDebt, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
