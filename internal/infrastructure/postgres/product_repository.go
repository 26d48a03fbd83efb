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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, organization_id, COALESCE(sku, ''), name, uom, type, price, stock, archived, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.OrganizationID, &p.SKU, &p.Name, &p.UOM, &p.Type, &p.Price, &p.Stock,
		&p.Archived, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. SKU repetido en la organización -> ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, organization_id, sku, name, uom, type, price, stock, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.OrganizationID, nullIfEmpty(product.SKU), product.Name, product.UOM, product.Type,
		product.Price, product.Stock, product.Archived, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto de la organización (incluye archivados).
func (r *ProductRepo) GetByID(ctx context.Context, organizationID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE organization_id = $1 AND id = $2`
	p, err := scanProduct(r.q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea las filas en orden de ID para evitar deadlocks entre órdenes concurrentes.
// Los IDs que no pertenecen a la organización simplemente no se devuelven.
func (r *ProductRepo) GetForUpdate(ctx context.Context, organizationID string, ids []string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE organization_id = $1 AND id = ANY($2::uuid[])
		ORDER BY id FOR UPDATE`
	rows, err := r.q.Query(ctx, query, organizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	return collectProducts(rows)
}

// Update actualiza datos de catálogo. stock nil deja las existencias como están.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product, stock *decimal.Decimal) error {
	query := `
		UPDATE products SET sku = $3, name = $4, uom = $5, type = $6, price = $7, updated_at = $8,
			stock = COALESCE($9::numeric, stock)
		WHERE organization_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		product.OrganizationID, product.ID, nullIfEmpty(product.SKU), product.Name, product.UOM,
		product.Type, product.Price, product.UpdatedAt, stock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija las existencias (usado por el flujo de órdenes bajo bloqueo).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Archive marca el producto como archivado. false si no existe en la organización.
func (r *ProductRepo) Archive(ctx context.Context, organizationID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET archived = true, updated_at = now() WHERE organization_id = $1 AND id = $2`,
		organizationID, id,
	)
	if err != nil {
		return false, fmt.Errorf("archive product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListActive lista productos no archivados con paginación.
func (r *ProductRepo) ListActive(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE organization_id = $1 AND archived = false
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}
