package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los indicadores del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

func (r *DashboardRepo) sum(ctx context.Context, op, query string, args ...any) (decimal.Decimal, error) {
	var v decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.%s: %w", op, err)
	}
	return v, nil
}

// SumConfirmedSales ventas del periodo: solo órdenes CONFIRMED.
func (r *DashboardRepo) SumConfirmedSales(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM orders
	WHERE organization_id = $1
	  AND status = 'CONFIRMED'
	  AND created_at >= $2 AND created_at < $3`
	return r.sum(ctx, "SumConfirmedSales", query, organizationID, from, to)
}

// SumPayments ingresos cobrados en el periodo (por fecha del pago).
func (r *DashboardRepo) SumPayments(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM payments
	WHERE organization_id = $1
	  AND date >= $2 AND date < $3`
	return r.sum(ctx, "SumPayments", query, organizationID, from, to)
}

// SumOpenOrderTotals total histórico de órdenes no canceladas.
func (r *DashboardRepo) SumOpenOrderTotals(ctx context.Context, organizationID string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM orders
	WHERE organization_id = $1 AND status <> 'CANCELLED'`
	return r.sum(ctx, "SumOpenOrderTotals", query, organizationID)
}

// SumAllPayments total histórico de pagos.
func (r *DashboardRepo) SumAllPayments(ctx context.Context, organizationID string) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE organization_id = $1`
	return r.sum(ctx, "SumAllPayments", query, organizationID)
}

// CountOrders órdenes no canceladas creadas en el periodo.
func (r *DashboardRepo) CountOrders(ctx context.Context, organizationID string, from, to time.Time) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM orders
	WHERE organization_id = $1
	  AND status <> 'CANCELLED'
	  AND created_at >= $2 AND created_at < $3`
	var n int
	if err := r.pool.QueryRow(ctx, query, organizationID, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountOrders: %w", err)
	}
	return n, nil
}

// RecentOrders últimas órdenes no canceladas con el nombre del cliente.
func (r *DashboardRepo) RecentOrders(ctx context.Context, organizationID string, limit int) ([]*entity.Order, error) {
	const query = `
	SELECT o.id, o.organization_id, o.entity_id, o.type, o.status, o.payment_status, o.total_amount,
	       o.is_invoiced, o.created_at, o.updated_at, e.commercial_name
	FROM orders o
	JOIN entities e ON e.id = o.entity_id
	WHERE o.organization_id = $1 AND o.status <> 'CANCELLED'
	ORDER BY o.created_at DESC
	LIMIT $2`
	rows, err := r.pool.Query(ctx, query, organizationID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentOrders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("dashboard.RecentOrders scan: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// SalesSince fecha y total de las órdenes no canceladas desde since.
func (r *DashboardRepo) SalesSince(ctx context.Context, organizationID string, since time.Time) ([]repository.SalePoint, error) {
	const query = `
	SELECT created_at, total_amount
	FROM orders
	WHERE organization_id = $1 AND status <> 'CANCELLED' AND created_at >= $2
	ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, organizationID, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard.SalesSince: %w", err)
	}
	defer rows.Close()
	var points []repository.SalePoint
	for rows.Next() {
		var p repository.SalePoint
		if err := rows.Scan(&p.CreatedAt, &p.Total); err != nil {
			return nil, fmt.Errorf("dashboard.SalesSince scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
