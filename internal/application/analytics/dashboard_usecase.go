// Package analytics contiene el caso de uso del dashboard de la organización.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	recentSalesLimit = 5  // filas del widget de ventas recientes
	chartDays        = 31 // hoy y los 30 días anteriores
)

// DashboardUseCase genera los KPIs del mes en curso, la cartera y la serie diaria de ventas.
//
// Fuente de datos: DashboardRepository (consultas read-only). El resultado se cachea por
// organización; las mutaciones de órdenes y pagos invalidan la entrada.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache ports.DashboardCache
	log   *logger.Logger
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, cache ports.DashboardCache, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{repo: repo, cache: cache, log: log.Named("dashboard"), now: time.Now}
}

// GetDashboard devuelve el dashboard de la organización, desde caché si existe.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, organizationID string) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, organizationID)
		if err != nil {
			uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("lectura de caché fallida")
		} else if cached != nil {
			return cached, nil
		}
	}

	out, err := uc.build(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, organizationID, out); err != nil {
			uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("escritura de caché fallida")
		}
	}
	return out, nil
}

func (uc *DashboardUseCase) build(ctx context.Context, organizationID string) (*dto.DashboardResponse, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	// Mes en curso: [día 1 00:00, día 1 del mes siguiente)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	chartStart := todayStart.AddDate(0, 0, -(chartDays - 1))

	// ── Consultas independientes en paralelo ──────────────────────────────────
	var (
		sales, revenue, openTotals, allPayments decimal.Decimal
		count                                   int
		out                                     dto.DashboardResponse
		points                                  []repository.SalePoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = uc.repo.SumConfirmedSales(gctx, organizationID, monthStart, monthEnd)
		return wrap("ventas del mes", err)
	})
	g.Go(func() (err error) {
		revenue, err = uc.repo.SumPayments(gctx, organizationID, monthStart, monthEnd)
		return wrap("cobros del mes", err)
	})
	g.Go(func() (err error) {
		openTotals, err = uc.repo.SumOpenOrderTotals(gctx, organizationID)
		return wrap("total de órdenes", err)
	})
	g.Go(func() (err error) {
		allPayments, err = uc.repo.SumAllPayments(gctx, organizationID)
		return wrap("total de pagos", err)
	})
	g.Go(func() (err error) {
		count, err = uc.repo.CountOrders(gctx, organizationID, monthStart, monthEnd)
		return wrap("conteo de órdenes", err)
	})
	g.Go(func() error {
		recent, err := uc.repo.RecentOrders(gctx, organizationID, recentSalesLimit)
		if err != nil {
			return wrap("ventas recientes", err)
		}
		out.RecentSales = make([]dto.RecentSale, 0, len(recent))
		for _, o := range recent {
			out.RecentSales = append(out.RecentSales, dto.RecentSale{
				ID:            o.ID,
				EntityName:    o.EntityName,
				TotalAmount:   o.TotalAmount,
				Status:        o.Status,
				PaymentStatus: o.PaymentStatus,
				CreatedAt:     o.CreatedAt,
			})
		}
		return nil
	})
	g.Go(func() (err error) {
		points, err = uc.repo.SalesSince(gctx, organizationID, chartStart)
		return wrap("serie de ventas", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Incluye pagos de órdenes canceladas; puede quedar negativo.
	receivables := openTotals.Sub(allPayments)
	out.Metrics = dto.DashboardMetrics{
		Sales:       sales.Round(2),
		Revenue:     revenue.Round(2),
		Receivables: receivables.Round(2),
		OrdersCount: count,
	}
	out.SalesChart = dailySeries(points, chartStart, chartDays)
	out.MonthLabel = monthLabel(now)
	out.GeneratedAt = now
	return &out, nil
}

// dailySeries agrupa los puntos por día local; los días sin ventas valen cero.
func dailySeries(points []repository.SalePoint, start time.Time, days int) []dto.SalesPoint {
	byDay := make(map[string]decimal.Decimal, days)
	for _, p := range points {
		key := p.CreatedAt.In(start.Location()).Format("2006-01-02")
		byDay[key] = byDay[key].Add(p.Total)
	}
	series := make([]dto.SalesPoint, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		series = append(series, dto.SalesPoint{
			Date:  key,
			Label: d.Format("02/01"),
			Total: byDay[key].Round(2),
		})
	}
	return series
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard: %s: %w", what, err)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
