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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, customer_id, customer_name, description, amount, payment_status, paid_amount, created_at`

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, customer_name, description, amount, payment_status, paid_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CustomerID, s.CustomerName, s.Description,
		s.Amount, string(s.PaymentStatus), s.PaidAmount, s.CreatedAt,
	)
	if err != nil {
		return writeErr("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List lista todas las ventas, la más reciente primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC, seq DESC`)
}

// ListByCustomer lista las ventas de un cliente, la más reciente primero.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE customer_id = $1 ORDER BY created_at DESC, seq DESC`, customerID)
}

// UpdatePayment cambia estado y monto pagado; si la venta no existe no hace nada.
func (r *SaleRepo) UpdatePayment(ctx context.Context, id string, status entity.PaymentStatus, paid decimal.Decimal) error {
	query := `UPDATE sales SET payment_status = $2, paid_amount = $3 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, string(status), paid); err != nil {
		return writeErr("update sale payment", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s      entity.Sale
		status string
	)
	err := row.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Description,
		&s.Amount, &status, &s.PaidAmount, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.PaymentStatus = entity.PaymentStatus(status)
	return &s, nil
}
