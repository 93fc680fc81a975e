// Package memory implementa los repositorios sobre mapas en memoria, vivos
// durante la vida del proceso. Un único RWMutex protege las cuatro colecciones;
// TxRunner lo toma en escritura durante toda una operación del libro.
package memory

import (
	"sync"

	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

// Store agrupa las colecciones por tipo de entidad.
type Store struct {
	mu        sync.RWMutex
	customers *table[entity.Customer]
	suppliers *table[entity.Supplier]
	sales     *table[entity.Sale]
	expenses  *table[entity.Expense]
}

// NewStore construye un store vacío. Cada test puede usar el suyo.
func NewStore() *Store {
	return &Store{
		customers: newTable[entity.Customer](),
		suppliers: newTable[entity.Supplier](),
		sales:     newTable[entity.Sale](),
		expenses:  newTable[entity.Expense](),
	}
}

// Customers repositorio de clientes fuera de transacción.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{access{s: s}} }

// Suppliers repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{access{s: s}} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{access{s: s}} }

// Expenses repositorio de gastos.
func (s *Store) Expenses() *ExpenseRepo { return &ExpenseRepo{access{s: s}} }

// access decide si un repositorio debe tomar el lock o si ya lo tiene su TxRunner.
type access struct {
	s    *Store
	held bool
}

func (a access) read() (unlock func()) {
	if a.held {
		return func() {}
	}
	a.s.mu.RLock()
	return a.s.mu.RUnlock
}

func (a access) write() (unlock func()) {
	if a.held {
		return func() {}
	}
	a.s.mu.Lock()
	return a.s.mu.Unlock
}

// table colección keyed por ID que recuerda el orden de inserción.
// Guarda valores; entrega copias para que nadie retenga el registro vivo.
type table[T any] struct {
	rows  map[string]*T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) insert(id string, v T) error {
	if _, ok := t.rows[id]; ok {
		return domain.ErrDuplicate
	}
	t.rows[id] = &v
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	cp := *row
	return &cp
}

// update aplica fn sobre el registro vivo; false si no existe.
func (t *table[T]) update(id string, fn func(*T)) bool {
	row, ok := t.rows[id]
	if !ok {
		return false
	}
	fn(row)
	return true
}

// scan devuelve copias de los registros que cumplen keep, del más reciente
// insertado al más antiguo. Con ese orden de base, un sort estable deja los
// empates con el más nuevo primero.
func (t *table[T]) scan(keep func(*T) bool) []*T {
	out := make([]*T, 0, len(t.order))
	for i := len(t.order) - 1; i >= 0; i-- {
		row := t.rows[t.order[i]]
		if keep != nil && !keep(row) {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	return out
}

func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			cp := *row
			return &cp
		}
	}
	return nil
}
