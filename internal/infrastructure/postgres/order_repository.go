package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes de venta y partidas sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `o.id, o.organization_id, o.entity_id, o.type, o.status, o.payment_status, o.total_amount,
	o.is_invoiced, o.created_at, o.updated_at, e.commercial_name`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.OrganizationID, &o.EntityID, &o.Type, &o.Status, &o.PaymentStatus, &o.TotalAmount,
		&o.IsInvoiced, &o.CreatedAt, &o.UpdatedAt, &o.EntityName)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserta la cabecera. Entidad inexistente -> ErrNotFound.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, organization_id, entity_id, type, status, payment_status, total_amount, is_invoiced, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrganizationID, order.EntityID, order.Type, order.Status, order.PaymentStatus,
		order.TotalAmount, order.IsInvoiced, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: entidad %s", domain.ErrNotFound, order.EntityID)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem inserta una partida.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO order_items (id, order_id, product_id, product_type, quantity, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.OrderID, item.ProductID, item.ProductType, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la orden de la organización con el nombre del cliente.
func (r *OrderRepo) GetByID(ctx context.Context, organizationID, id string) (*entity.Order, error) {
	return r.getOne(ctx, organizationID, id, "")
}

// GetForUpdate igual que GetByID pero bloquea la fila de la orden.
func (r *OrderRepo) GetForUpdate(ctx context.Context, organizationID, id string) (*entity.Order, error) {
	return r.getOne(ctx, organizationID, id, " FOR UPDATE OF o")
}

func (r *OrderRepo) getOne(ctx context.Context, organizationID, id, lock string) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN entities e ON e.id = o.entity_id
		WHERE o.organization_id = $1 AND o.id = $2` + lock
	o, err := scanOrder(r.q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetItems partidas con el nombre actual del producto y el tipo con el que se vendieron, en orden de inserción.
func (r *OrderRepo) GetItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price, p.name, i.product_type
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.created_at, i.id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.ProductName, &it.ProductType); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByOrganization órdenes más recientes primero.
func (r *OrderRepo) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN entities e ON e.id = o.entity_id
		WHERE o.organization_id = $1
		ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateTotal fija el total calculado.
func (r *OrderRepo) UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE orders SET total_amount = $2, updated_at = now() WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de la orden.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdatePaymentStatus cambia el estado de pago.
func (r *OrderRepo) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	_, err := r.q.Exec(ctx, `UPDATE orders SET payment_status = $2, updated_at = now() WHERE id = $1`, id, paymentStatus)
	if err != nil {
		return fmt.Errorf("update order payment status: %w", err)
	}
	return nil
}

// Delete borra partidas y cabecera (llamar dentro de la transacción).
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
