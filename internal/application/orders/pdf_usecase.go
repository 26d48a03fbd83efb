package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/internal/domain/sales"
)

// PDFUseCase genera la representación impresa (PDF) de una orden de venta.
type PDFUseCase struct {
	orgRepo     repository.OrganizationRepository
	entityRepo  repository.EntityRepository
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	generator   OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orgRepo repository.OrganizationRepository,
	entityRepo repository.EntityRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orgRepo:     orgRepo,
		entityRepo:  entityRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		generator:   generator,
	}
}

// DownloadOrderPDF reúne orden, cliente, partidas y pagos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe en la organización.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, tc tenant.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Orden (acotada a la organización) ──────────────────────────────────
	order, err := uc.orderRepo.GetByID(ctx, tc.OrganizationID, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
	}

	// ── 2. Emisor y cliente ───────────────────────────────────────────────────
	org, err := uc.orgRepo.GetByID(ctx, tc.OrganizationID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener organización: %w", err)
	}
	if org == nil {
		return nil, "", fmt.Errorf("%w: organización", domain.ErrNotFound)
	}
	customer, err := uc.entityRepo.GetByID(ctx, tc.OrganizationID, order.EntityID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("%w: cliente %s", domain.ErrNotFound, order.EntityID)
	}

	// ── 3. Partidas y pagos ───────────────────────────────────────────────────
	items, err := uc.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener partidas: %w", err)
	}
	payments, err := uc.paymentRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pagos: %w", err)
	}

	paid := sumPayments(payments)
	totals := sales.TotalsFromItems(items)
	totals.Total = order.TotalAmount
	doc := &OrderDocument{
		Organization: org,
		Order:        order,
		Entity:       customer,
		Items:        items,
		Payments:     payments,
		Totals:       totals,
		Paid:         paid,
		Balance:      order.TotalAmount.Sub(paid),
	}

	// ── 4. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("orden_%s.pdf", sales.ShortID(order.ID)), nil
}
