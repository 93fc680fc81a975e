package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, phone, category, created_at`

// SupplierRepo implementación de SupplierRepository.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, name_key, phone, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, entity.NameKey(s.Name), s.Phone, s.Category, s.CreatedAt)
	if err != nil {
		return writeErr("insert supplier", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.one(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

// GetByName busca el primer proveedor registrado con ese nombre (sin distinguir mayúsculas).
func (r *SupplierRepo) GetByName(ctx context.Context, name string) (*entity.Supplier, error) {
	return r.one(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE name_key = $1 ORDER BY seq LIMIT 1`, entity.NameKey(name))
}

// List lista proveedores, el más reciente primero.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) one(ctx context.Context, query string, arg any) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Category, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
