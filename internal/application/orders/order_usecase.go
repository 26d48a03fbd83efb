package orders

import (
	"context"
	"fmt"
	"sort"
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
	"github.com/shopspring/decimal"
)

// OrderUseCase ciclo de vida de las órdenes de venta: alta, cambio de estado, borrado y consultas.
type OrderUseCase struct {
	txRunner    TxRunner
	entityRepo  repository.EntityRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	cache       ports.CacheInvalidator
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso. Los repos sueltos (pool) se usan para lecturas fuera de la tx.
func NewOrderUseCase(
	txRunner TxRunner,
	entityRepo repository.EntityRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	cache ports.CacheInvalidator,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		entityRepo:  entityRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
		log:         log,
	}
}

// CreateOrder valida cliente, productos y existencias y crea la orden en una sola transacción.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, tc tenant.Context, in dto.CreateOrderRequest) (*dto.OrderDetailResponse, error) {
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusDraft
	}

	// ── 1. Cliente de la organización ─────────────────────────────────────────
	customer, err := uc.entityRepo.GetByID(ctx, tc.OrganizationID, in.EntityID)
	if err != nil {
		return nil, fmt.Errorf("orders: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.EntityID)
	}
	if !customer.IsCustomer() {
		return nil, domain.NewValidationError("entity_id", "la entidad no es un cliente")
	}

	// ── 2. Productos y existencias (lectura previa, sin bloqueo) ──────────────
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.OrderItem{
			ID:        uuid.New().String(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	demand := sales.DemandByProduct(items)
	productsByID := make(map[string]*entity.Product, len(demand))
	for _, id := range sortedKeys(demand) {
		p, err := uc.productRepo.GetByID(ctx, tc.OrganizationID, id)
		if err != nil {
			return nil, fmt.Errorf("orders: obtener producto: %w", err)
		}
		if p == nil || p.Archived {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		if err := sales.CheckAvailability(p, demand[id]); err != nil {
			return nil, err
		}
		productsByID[id] = p
	}
	for _, it := range items {
		p := productsByID[it.ProductID]
		it.ProductName = p.Name
		it.ProductType = p.Type
	}

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		OrganizationID: tc.OrganizationID,
		EntityID:       customer.ID,
		EntityName:     customer.CommercialName,
		Type:           entity.OrderTypeSale,
		Status:         status,
		PaymentStatus:  entity.PaymentStatusUnpaid,
		TotalAmount:    decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	totals := sales.TotalsFromItems(items)

	// ── 3. Transacción: cabecera, partidas, stock y total ─────────────────────
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		_ repository.PaymentRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, it := range items {
			it.OrderID = order.ID
			if err := orderRepo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		if err := adjustStock(ctx, productRepo, tc.OrganizationID, items, sales.StockDeduct); err != nil {
			return err
		}
		order.TotalAmount = totals.Total
		return orderRepo.UpdateTotal(ctx, order.ID, totals.Total)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, tc.OrganizationID)

	return toOrderDetail(order, items, nil), nil
}

// UpdateOrderStatus confirma o cancela una orden ajustando existencias según la transición.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, tc tenant.Context, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	var order *entity.Order
	changed := false
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		_ repository.PaymentRepository,
	) error {
		var err error
		order, err = orderRepo.GetForUpdate(ctx, tc.OrganizationID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
		}
		effect, err := sales.PlanTransition(order, in.Status)
		if err != nil {
			return err
		}
		if order.Status == in.Status {
			return nil
		}
		if effect != sales.StockUnchanged {
			items, err := orderRepo.GetItems(ctx, order.ID)
			if err != nil {
				return err
			}
			if err := adjustStock(ctx, productRepo, tc.OrganizationID, items, effect); err != nil {
				return err
			}
		}
		if err := orderRepo.UpdateStatus(ctx, order.ID, in.Status); err != nil {
			return err
		}
		order.Status = in.Status
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		uc.invalidate(ctx, tc.OrganizationID)
	}
	out := toOrderResponse(order)
	return &out, nil
}

// DeleteOrder borra la orden y sus partidas. Devuelve el stock salvo que ya estuviera cancelada.
// No se permite borrar órdenes con pagos.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, tc tenant.Context, orderID string) error {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
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
		n, err := paymentRepo.CountByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: la orden tiene %d pago(s) registrados", domain.ErrConflict, n)
		}
		if order.Status != entity.OrderStatusCancelled {
			items, err := orderRepo.GetItems(ctx, order.ID)
			if err != nil {
				return err
			}
			if err := adjustStock(ctx, productRepo, tc.OrganizationID, items, sales.StockRestore); err != nil {
				return err
			}
		}
		return orderRepo.Delete(ctx, order.ID)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, tc.OrganizationID)
	return nil
}

// ListOrders órdenes de la organización, más recientes primero.
func (uc *OrderUseCase) ListOrders(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.ListByOrganization(ctx, tc.OrganizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetOrder orden con partidas, pagos y saldo.
func (uc *OrderUseCase) GetOrder(ctx context.Context, tc tenant.Context, orderID string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, tc.OrganizationID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
	}
	items, err := uc.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderDetail(order, items, payments), nil
}

func (uc *OrderUseCase) invalidate(ctx context.Context, organizationID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, organizationID); err != nil {
		uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("no se pudo invalidar la caché del dashboard")
	}
}

// adjustStock bloquea los productos físicos de las partidas (en orden de ID) y descuenta o devuelve existencias.
// Cuenta el tipo guardado en la partida, no el actual del producto. Al descontar vuelve a verificar el stock bajo el bloqueo.
func adjustStock(
	ctx context.Context,
	productRepo repository.ProductRepository,
	organizationID string,
	items []*entity.OrderItem,
	effect sales.StockEffect,
) error {
	if effect == sales.StockUnchanged {
		return nil
	}
	demand := sales.DemandByProduct(stockedItems(items))
	if len(demand) == 0 {
		return nil
	}
	locked, err := productRepo.GetForUpdate(ctx, organizationID, sortedKeys(demand))
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Product, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}
	for _, id := range sortedKeys(demand) {
		p, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		qty := demand[id]
		var newStock decimal.Decimal
		if effect == sales.StockDeduct {
			if qty.GreaterThan(p.Stock) {
				return &domain.InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Available: p.Stock, Requested: qty}
			}
			newStock = p.Stock.Sub(qty)
		} else {
			newStock = p.Stock.Add(qty)
		}
		if err := productRepo.UpdateStock(ctx, p.ID, newStock); err != nil {
			return err
		}
		p.Stock = newStock
	}
	return nil
}

// stockedItems partidas vendidas como PRODUCT.
func stockedItems(items []*entity.OrderItem) []*entity.OrderItem {
	out := make([]*entity.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ProductType == entity.ProductTypeProduct {
			out = append(out, it)
		}
	}
	return out
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
