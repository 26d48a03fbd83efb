package sales

import (
	"fmt"

	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockEffect efecto de una transición sobre las existencias.
type StockEffect int

const (
	StockUnchanged StockEffect = iota
	StockRestore
	StockDeduct
)

// PlanTransition valida el cambio de estado y devuelve qué hacer con el stock.
// Solo se admiten como destino CONFIRMED y CANCELLED; mismo estado = sin cambios.
func PlanTransition(order *entity.Order, target string) (StockEffect, error) {
	if target != entity.OrderStatusConfirmed && target != entity.OrderStatusCancelled {
		return StockUnchanged, fmt.Errorf("%w: destino %q no permitido", domain.ErrInvalidTransition, target)
	}
	if order.Status == target {
		return StockUnchanged, nil
	}
	switch target {
	case entity.OrderStatusCancelled:
		if order.PaymentStatus == entity.PaymentStatusPaid {
			return StockUnchanged, fmt.Errorf("%w: una orden pagada no se puede cancelar", domain.ErrConflict)
		}
		return StockRestore, nil
	default:
		if order.Status == entity.OrderStatusCancelled {
			return StockDeduct, nil
		}
		return StockUnchanged, nil
	}
}

// DemandByProduct agrega cantidades por producto (líneas repetidas suman).
func DemandByProduct(items []*entity.OrderItem) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		out[it.ProductID] = out[it.ProductID].Add(it.Quantity)
	}
	return out
}

// CheckAvailability devuelve *domain.InsufficientStockError si el producto no cubre requested.
// Los servicios siempre están disponibles.
func CheckAvailability(p *entity.Product, requested decimal.Decimal) error {
	if !p.TracksStock() {
		return nil
	}
	if requested.GreaterThan(p.Stock) {
		return &domain.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   requested,
		}
	}
	return nil
}
