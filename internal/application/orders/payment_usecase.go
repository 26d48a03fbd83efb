package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/internal/domain/sales"
	"github.com/jhoicas/Axioma-api/pkg/logger"
	"github.com/jhoicas/Axioma-api/pkg/validate"
)

// PaymentUseCase registra abonos contra órdenes y recalcula su estado de pago.
type PaymentUseCase struct {
	txRunner TxRunner
	cache    ports.CacheInvalidator
	log      *logger.Logger
	now      func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner, cache ports.CacheInvalidator, log *logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, cache: cache, log: log, now: time.Now}
}

// RegisterPayment inserta el pago bajo bloqueo de la orden.
// El monto no puede superar total − pagado (sin tolerancia); el estado PAID sí aplica la tolerancia de 0.01.
func (uc *PaymentUseCase) RegisterPayment(ctx context.Context, tc tenant.Context, orderID string, in dto.RegisterPaymentRequest) (*dto.RegisterPaymentResponse, error) {
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	now := uc.now()
	payment := &entity.Payment{
		ID:             uuid.New().String(),
		OrganizationID: tc.OrganizationID,
		OrderID:        orderID,
		Amount:         in.Amount,
		Method:         in.Method,
		Reference:      in.Reference,
		Date:           now,
		CreatedAt:      now,
	}
	if in.Date != nil && !in.Date.IsZero() {
		payment.Date = *in.Date
	}

	var out *dto.RegisterPaymentResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, tc.OrganizationID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
		}
		if order.Status == entity.OrderStatusCancelled {
			return fmt.Errorf("%w: no se pueden registrar pagos en una orden cancelada", domain.ErrConflict)
		}
		paid, err := paymentRepo.SumByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if sales.ExceedsBalance(order.TotalAmount, paid, in.Amount) {
			return fmt.Errorf("%w: saldo pendiente %s", domain.ErrPaymentExceedsBalance,
				sales.PendingBalance(order.TotalAmount, paid).StringFixed(2))
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		paid = paid.Add(in.Amount)
		status := sales.DerivePaymentStatus(order.TotalAmount, paid)
		if err := orderRepo.UpdatePaymentStatus(ctx, order.ID, status); err != nil {
			return err
		}
		out = &dto.RegisterPaymentResponse{
			Payment:       toPaymentResponse(payment),
			PaymentStatus: status,
			Paid:          paid,
			Balance:       sales.PendingBalance(order.TotalAmount, paid),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, tc.OrganizationID); err != nil {
			uc.log.Warn().Err(err).Str("organization_id", tc.OrganizationID).Msg("no se pudo invalidar la caché del dashboard")
		}
	}
	return out, nil
}
