package ports

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
)

// CacheInvalidator descarta las vistas cacheadas de una organización tras una mutación.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, organizationID string) error
}

// DashboardCache caché del dashboard por organización. Get devuelve nil, nil si no hay entrada.
type DashboardCache interface {
	CacheInvalidator
	Get(ctx context.Context, organizationID string) (*dto.DashboardResponse, error)
	Set(ctx context.Context, organizationID string, value *dto.DashboardResponse) error
}
