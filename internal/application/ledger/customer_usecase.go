package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/money"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente explícitamente, siempre con deuda cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		TotalDebt: decimal.Zero,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return ToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(customer), nil
}

// List lista clientes por deuda descendente.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out, nil
}

// ToCustomerResponse convierte la entidad a DTO.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		TotalDebt: money.Format(c.TotalDebt),
		CreatedAt: c.CreatedAt,
	}
}
