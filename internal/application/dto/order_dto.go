package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest partida de la orden.
type CreateOrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" validate:"dgte=1,dplaces=2"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"dgte=0,dplaces=2"`
}

// CreateOrderRequest entrada para crear una orden de venta. Status por defecto DRAFT.
type CreateOrderRequest struct {
	EntityID string                   `json:"entity_id" validate:"required,uuid"`
	Status   string                   `json:"status" validate:"omitempty,oneof=DRAFT CONFIRMED"`
	Items    []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest cambio de estado (CONFIRMED o CANCELLED).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED"`
}

// RegisterPaymentRequest abono contra una orden. Date por defecto ahora.
type RegisterPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"dgt=0,dplaces=2"`
	Method    string          `json:"method" validate:"required,oneof=CASH TRANSFER CARD OTHER"`
	Reference string          `json:"reference" validate:"omitempty,max=120"`
	Date      *time.Time      `json:"date"`
}

// OrderResponse cabecera de la orden.
type OrderResponse struct {
	ID            string          `json:"id"`
	ShortID       string          `json:"short_id"`
	EntityID      string          `json:"entity_id"`
	EntityName    string          `json:"entity_name"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	IsInvoiced    bool            `json:"is_invoiced"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItemResponse partida con datos del producto.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Date      time.Time       `json:"date"`
}

// OrderDetailResponse orden completa: partidas, pagos y totales.
type OrderDetailResponse struct {
	OrderResponse
	Items    []OrderItemResponse `json:"items"`
	Payments []PaymentResponse   `json:"payments"`
	Subtotal decimal.Decimal     `json:"subtotal"`
	Tax      decimal.Decimal     `json:"tax"`
	Paid     decimal.Decimal     `json:"paid"`
	Balance  decimal.Decimal     `json:"balance"`
}

// RegisterPaymentResponse pago creado y nuevo estado de pago de la orden.
type RegisterPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	PaymentStatus string          `json:"payment_status"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
