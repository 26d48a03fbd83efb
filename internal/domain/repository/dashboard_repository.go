package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalePoint total de una orden en su fecha (serie diaria).
type SalePoint struct {
	CreatedAt time.Time
	Total     decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
// Los rangos son semiabiertos [from, to).
type DashboardRepository interface {
	SumConfirmedSales(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error)
	SumPayments(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error)
	SumOpenOrderTotals(ctx context.Context, organizationID string) (decimal.Decimal, error)
	SumAllPayments(ctx context.Context, organizationID string) (decimal.Decimal, error)
	CountOrders(ctx context.Context, organizationID string, from, to time.Time) (int, error)
	RecentOrders(ctx context.Context, organizationID string, limit int) ([]*entity.Order, error)
	// SalesSince órdenes no canceladas desde since (agrupación en memoria).
	SalesSince(ctx context.Context, organizationID string, since time.Time) ([]SalePoint, error)
}
