package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderTypeSale único tipo de orden soportado.
const OrderTypeSale = "SALE"

// Estados del ciclo de vida de una orden.
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCancelled = "CANCELLED"
)

// Estados de pago, derivados de la suma de pagos.
const (
	PaymentStatusUnpaid  = "UNPAID"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPaid    = "PAID"
)

// Order cabecera de una orden de venta.
type Order struct {
	ID             string
	OrganizationID string
	EntityID       string
	Type           string
	Status         string
	PaymentStatus  string
	TotalAmount    decimal.Decimal
	IsInvoiced     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	EntityName     string // solo lectura (JOIN)
}

// OrderItem línea de la orden. UnitPrice se copia al momento de la venta.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	ProductName string // solo lectura (JOIN)
	ProductType string // solo lectura (JOIN)
}

// Amount importe de la línea sin impuestos.
func (i *OrderItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Métodos de pago.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCard     = "CARD"
	PaymentMethodOther    = "OTHER"
)

// Payment abono registrado contra una orden.
type Payment struct {
	ID             string
	OrganizationID string
	OrderID        string
	Amount         decimal.Decimal
	Method         string
	Reference      string
	Date           time.Time
	CreatedAt      time.Time
}
