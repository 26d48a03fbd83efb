package repository

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderRepository puerto de persistencia para órdenes y sus partidas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, organizationID, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila de la orden (FOR UPDATE).
	GetForUpdate(ctx context.Context, organizationID, id string) (*entity.Order, error)
	GetItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Order, error)
	UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error
	// Delete borra partidas y cabecera.
	Delete(ctx context.Context, id string) error
}

// PaymentRepository puerto de persistencia del libro de pagos (solo inserción).
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	SumByOrder(ctx context.Context, orderID string) (decimal.Decimal, error)
	CountByOrder(ctx context.Context, orderID string) (int, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Payment, error)
}
