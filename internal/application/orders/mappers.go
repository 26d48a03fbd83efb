package orders

import (
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/sales"
	"github.com/shopspring/decimal"
)

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		ShortID:       sales.ShortID(o.ID),
		EntityID:      o.EntityID,
		EntityName:    o.EntityName,
		Type:          o.Type,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		TotalAmount:   o.TotalAmount,
		IsInvoiced:    o.IsInvoiced,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		Date:      p.Date,
	}
}

func sumPayments(payments []*entity.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

func toOrderDetail(o *entity.Order, items []*entity.OrderItem, payments []*entity.Payment) *dto.OrderDetailResponse {
	totals := sales.TotalsFromItems(items)
	paid := sumPayments(payments)
	out := &dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(o),
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
		Payments:      make([]dto.PaymentResponse, 0, len(payments)),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Paid:          paid,
		Balance:       sales.PendingBalance(o.TotalAmount, paid),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductType: it.ProductType,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount(),
		})
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, toPaymentResponse(p))
	}
	return out
}
