package analytics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/Axioma-api/internal/application/analytics"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgID = "org-1"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeRepo struct {
	mu         sync.Mutex
	monthFrom  time.Time
	monthTo    time.Time
	chartSince time.Time
	points     []repository.SalePoint
	failSeries bool
	calls      int
}

func (f *fakeRepo) SumConfirmedSales(_ context.Context, _ string, from, to time.Time) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.monthFrom, f.monthTo = from, to
	return dec("1160.004"), nil
}

func (f *fakeRepo) SumPayments(context.Context, string, time.Time, time.Time) (decimal.Decimal, error) {
	return dec("500"), nil
}

func (f *fakeRepo) SumOpenOrderTotals(context.Context, string) (decimal.Decimal, error) {
	return dec("2000"), nil
}

func (f *fakeRepo) SumAllPayments(context.Context, string) (decimal.Decimal, error) {
	return dec("750.50"), nil
}

func (f *fakeRepo) CountOrders(context.Context, string, time.Time, time.Time) (int, error) {
	return 3, nil
}

func (f *fakeRepo) RecentOrders(_ context.Context, _ string, limit int) ([]*entity.Order, error) {
	return []*entity.Order{{ID: "o-1", EntityName: "Cafetería Luna", TotalAmount: dec("116"), Status: entity.OrderStatusConfirmed}}, nil
}

func (f *fakeRepo) SalesSince(_ context.Context, _ string, since time.Time) ([]repository.SalePoint, error) {
	f.mu.Lock()
	f.chartSince = since
	f.mu.Unlock()
	if f.failSeries {
		return nil, errors.New("boom")
	}
	return f.points, nil
}

type memCache struct {
	data        map[string]*dto.DashboardResponse
	invalidated []string
}

func (m *memCache) Get(_ context.Context, id string) (*dto.DashboardResponse, error) {
	return m.data[id], nil
}

func (m *memCache) Set(_ context.Context, id string, v *dto.DashboardResponse) error {
	m.data[id] = v
	return nil
}

func (m *memCache) Invalidate(_ context.Context, id string) error {
	delete(m.data, id)
	m.invalidated = append(m.invalidated, id)
	return nil
}

var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.Local)

func TestGetDashboard_Metrics(t *testing.T) {
	repo := &fakeRepo{points: []repository.SalePoint{
		{CreatedAt: fixedNow.Add(-2 * time.Hour), Total: dec("100")},
		{CreatedAt: fixedNow.Add(-1 * time.Hour), Total: dec("16")},
		{CreatedAt: fixedNow.AddDate(0, 0, -30), Total: dec("50")},
	}}
	uc := analytics.NewDashboardUseCase(repo, nil, logger.Nop())
	uc.SetNow(func() time.Time { return fixedNow })

	out, err := uc.GetDashboard(context.Background(), orgID)
	require.NoError(t, err)

	assert.True(t, out.Metrics.Sales.Equal(dec("1160")), "ventas redondeadas a 2 decimales")
	assert.True(t, out.Metrics.Revenue.Equal(dec("500")))
	assert.True(t, out.Metrics.Receivables.Equal(dec("1249.50")))
	assert.Equal(t, 3, out.Metrics.OrdersCount)
	require.Len(t, out.RecentSales, 1)
	assert.Equal(t, "Cafetería Luna", out.RecentSales[0].EntityName)
	assert.Equal(t, "Octubre 2026", out.MonthLabel)

	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), repo.monthFrom)
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.Local), repo.monthTo)

	require.Len(t, out.SalesChart, 31)
	first, last := out.SalesChart[0], out.SalesChart[30]
	assert.Equal(t, "2026-09-14", first.Date)
	assert.Equal(t, "14/09", first.Label)
	assert.True(t, first.Total.Equal(dec("50")))
	assert.Equal(t, "2026-10-14", last.Date)
	assert.Equal(t, "14/10", last.Label)
	assert.True(t, last.Total.Equal(dec("116")))
	assert.True(t, out.SalesChart[15].Total.IsZero())
	assert.Equal(t, time.Date(2026, time.September, 14, 0, 0, 0, 0, time.Local), repo.chartSince)
}

func TestGetDashboard_ReceivablesIsPlainDifference(t *testing.T) {
	repo := &overpaidRepo{fakeRepo: &fakeRepo{}}
	uc := analytics.NewDashboardUseCase(repo, nil, nil)

	out, err := uc.GetDashboard(context.Background(), orgID)
	require.NoError(t, err)
	assert.True(t, out.Metrics.Receivables.Equal(dec("-650.50")), "100 − 750.50, sin piso en cero")
}

type overpaidRepo struct{ *fakeRepo }

func (overpaidRepo) SumOpenOrderTotals(context.Context, string) (decimal.Decimal, error) {
	return dec("100"), nil
}

func TestGetDashboard_UsesCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := &memCache{data: map[string]*dto.DashboardResponse{}}
	uc := analytics.NewDashboardUseCase(repo, cache, logger.Nop())
	uc.SetNow(func() time.Time { return fixedNow })
	ctx := context.Background()

	first, err := uc.GetDashboard(ctx, orgID)
	require.NoError(t, err)
	second, err := uc.GetDashboard(ctx, orgID)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.calls)

	require.NoError(t, cache.Invalidate(ctx, orgID))
	_, err = uc.GetDashboard(ctx, orgID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestGetDashboard_QueryError(t *testing.T) {
	repo := &fakeRepo{failSeries: true}
	cache := &memCache{data: map[string]*dto.DashboardResponse{}}
	uc := analytics.NewDashboardUseCase(repo, cache, logger.Nop())

	_, err := uc.GetDashboard(context.Background(), orgID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serie de ventas")
	assert.Empty(t, cache.data)
}
