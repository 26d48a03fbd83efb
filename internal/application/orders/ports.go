package orders

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de ventas atados a ella.
// Si fn retorna error se hace rollback de todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// OrderDocument datos necesarios para la representación impresa de una orden.
type OrderDocument struct {
	Organization *entity.Organization
	Order        *entity.Order
	Entity       *entity.BusinessEntity
	Items        []*entity.OrderItem
	Payments     []*entity.Payment
	Totals       sales.Totals
	Paid         decimal.Decimal
	Balance      decimal.Decimal
}

// OrderPDFGenerator puerto de salida para la generación del PDF.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc *OrderDocument) ([]byte, error)
}
