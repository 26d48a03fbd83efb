package repository

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
)

// EntityRepository puerto de persistencia para clientes/proveedores.
type EntityRepository interface {
	Create(ctx context.Context, e *entity.BusinessEntity) error
	GetByID(ctx context.Context, organizationID, id string) (*entity.BusinessEntity, error)
	// ListByOrganization filtra por tipos; types vacío = todos. Orden por nombre comercial.
	ListByOrganization(ctx context.Context, organizationID string, types []string, limit, offset int) ([]*entity.BusinessEntity, error)
}
