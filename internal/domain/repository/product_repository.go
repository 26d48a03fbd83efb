package repository

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas están acotadas a la organización.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, organizationID, id string) (*entity.Product, error)
	// GetForUpdate bloquea (FOR UPDATE) los productos en orden de ID.
	GetForUpdate(ctx context.Context, organizationID string, ids []string) ([]*entity.Product, error)
	// Update actualiza el catálogo y, si stock no es nil, las existencias en la misma sentencia.
	Update(ctx context.Context, product *entity.Product, stock *decimal.Decimal) error
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
	Archive(ctx context.Context, organizationID, id string) (bool, error)
	ListActive(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Product, error)
}
