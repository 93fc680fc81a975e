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
	"github.com/jhoicas/tempero-api/internal/domain/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/money"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// SaleUseCase registra ventas y enmiendas de pago manteniendo la deuda de cada
// cliente igual a la suma de lo pendiente de sus ventas.
//
// Las escrituras pasan por TxRunner; las lecturas van directo al repositorio.
type SaleUseCase struct {
	tx    TxRunner
	sales repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales}
}

// Create registra una venta:
//  1. Resuelve el cliente por nombre (sin distinguir mayúsculas) o lo crea con deuda 0.
//  2. Persiste la venta atada al cliente.
//  3. Si es fiado o parcial, suma (amount - paidAmount) a la deuda del cliente.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: customerName y description son requeridos", domain.ErrInvalidInput)
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
	given, err := money.ParseOptional(in.PaidAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	paid := initialPaid(status, amount, given)
	if paid.GreaterThan(amount) {
		return nil, fmt.Errorf("%w: paidAmount no puede superar amount", domain.ErrInvalidInput)
	}

	var sale *entity.Sale
	err = uc.tx.Run(ctx, func(customers repository.CustomerRepository, sales repository.SaleRepository) error {
		customer, err := customers.GetByName(ctx, in.CustomerName)
		if err != nil {
			return fmt.Errorf("buscar cliente: %w", err)
		}
		if customer == nil {
			customer = &entity.Customer{
				ID:        uuid.New().String(),
				Name:      in.CustomerName,
				TotalDebt: decimal.Zero,
				CreatedAt: time.Now(),
			}
			if err := customers.Create(ctx, customer); err != nil {
				return fmt.Errorf("crear cliente: %w", err)
			}
		}

		sale = &entity.Sale{
			ID:            uuid.New().String(),
			CustomerID:    customer.ID,
			CustomerName:  in.CustomerName,
			Description:   in.Description,
			Amount:        amount,
			PaymentStatus: status,
			PaidAmount:    paid,
			CreatedAt:     time.Now(),
		}
		if err := sales.Create(ctx, sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}

		if debt, changed := ledger.DebtAfterSale(customer.TotalDebt, status, amount, paid); changed {
			if err := customers.UpdateDebt(ctx, customer.ID, debt); err != nil {
				return fmt.Errorf("actualizar deuda: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// initialPaid monto pagado con que nace la venta. Sin valor explícito, una venta
// "pago" se considera pagada por completo y las demás arrancan en cero.
func initialPaid(status entity.PaymentStatus, amount decimal.Decimal, given *decimal.Decimal) decimal.Decimal {
	if given != nil {
		return *given
	}
	if status == entity.PaymentPago {
		return amount
	}
	return decimal.Zero
}

// AmendPayment cambia el estado y opcionalmente el monto pagado de una venta y
// ajusta la deuda del cliente por delta: resta lo que la venta aportaba antes y
// suma lo que aporta ahora, con piso en cero.
//
// Retorna domain.ErrNotFound si la venta no existe.
func (uc *SaleUseCase) AmendPayment(ctx context.Context, id string, in dto.AmendPaymentRequest) (*dto.SaleResponse, error) {
	status := entity.PaymentStatus(in.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	newPaid, err := money.ParseOptional(in.PaidAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var updated *entity.Sale
	err = uc.tx.Run(ctx, func(customers repository.CustomerRepository, sales repository.SaleRepository) error {
		sale, err := sales.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("obtener venta: %w", err)
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		oldPaid := sale.PaidAmount
		effective := oldPaid
		if newPaid != nil {
			effective = *newPaid
		}
		effective = money.Round(effective)
		if effective.GreaterThan(sale.Amount) {
			return fmt.Errorf("%w: paidAmount no puede superar amount", domain.ErrInvalidInput)
		}

		if err := sales.UpdatePayment(ctx, id, status, effective); err != nil {
			return fmt.Errorf("actualizar pago: %w", err)
		}
		sale.PaymentStatus = status
		sale.PaidAmount = effective
		updated = sale

		if sale.CustomerID == "" {
			return nil
		}
		customer, err := customers.GetByID(ctx, sale.CustomerID)
		if err != nil {
			return fmt.Errorf("obtener cliente: %w", err)
		}
		if customer == nil {
			return nil
		}
		debt := ledger.DebtAfterAmendment(customer.TotalDebt, sale.Amount, oldPaid, effective)
		if err := customers.UpdateDebt(ctx, customer.ID, debt); err != nil {
			return fmt.Errorf("actualizar deuda: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(updated), nil
}

// GetByID obtiene una venta; domain.ErrNotFound si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return ToSaleResponse(sale), nil
}

// List lista todas las ventas, la más reciente primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	return toSaleResponses(list), nil
}

// ListByCustomer lista las ventas de un cliente, la más reciente primero.
// Un cliente inexistente simplemente no tiene ventas.
func (uc *SaleUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*dto.SaleResponse, error) {
	list, err := uc.sales.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listar ventas del cliente: %w", err)
	}
	return toSaleResponses(list), nil
}

// ToSaleResponse convierte la entidad a DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Description:   s.Description,
		Amount:        money.Format(s.Amount),
		PaymentStatus: string(s.PaymentStatus),
		PaidAmount:    money.Format(s.PaidAmount),
		CreatedAt:     s.CreatedAt,
	}
}

func toSaleResponses(list []*entity.Sale) []*dto.SaleResponse {
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
