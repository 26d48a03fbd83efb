package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
)

var _ repository.EntityRepository = (*EntityRepo)(nil)

// EntityRepo clientes y proveedores sobre PostgreSQL.
type EntityRepo struct {
	q Querier
}

// NewEntityRepository construye el adaptador.
func NewEntityRepository(q Querier) *EntityRepo {
	return &EntityRepo{q: q}
}

const entityColumns = `id, organization_id, type, commercial_name, COALESCE(legal_name, ''), COALESCE(tax_id, ''),
	COALESCE(email, ''), COALESCE(postal_code, ''), created_at, updated_at`

func scanEntity(row pgx.Row) (*entity.BusinessEntity, error) {
	var e entity.BusinessEntity
	err := row.Scan(&e.ID, &e.OrganizationID, &e.Type, &e.CommercialName, &e.LegalName, &e.TaxID,
		&e.Email, &e.PostalCode, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste una entidad.
func (r *EntityRepo) Create(ctx context.Context, e *entity.BusinessEntity) error {
	query := `
		INSERT INTO entities (id, organization_id, type, commercial_name, legal_name, tax_id, email, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.OrganizationID, e.Type, e.CommercialName, nullIfEmpty(e.LegalName), nullIfEmpty(e.TaxID),
		nullIfEmpty(e.Email), nullIfEmpty(e.PostalCode), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entity: %w", err)
	}
	return nil
}

// GetByID obtiene la entidad de la organización. nil, nil si no existe o es de otra organización.
func (r *EntityRepo) GetByID(ctx context.Context, organizationID, id string) (*entity.BusinessEntity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE organization_id = $1 AND id = $2`
	e, err := scanEntity(r.q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return e, nil
}

// ListByOrganization lista entidades filtrando por tipo (vacío = todos).
func (r *EntityRepo) ListByOrganization(ctx context.Context, organizationID string, types []string, limit, offset int) ([]*entity.BusinessEntity, error) {
	query := `
		SELECT ` + entityColumns + `
		FROM entities
		WHERE organization_id = $1 AND (cardinality($2::text[]) = 0 OR type = ANY($2::text[]))
		ORDER BY commercial_name LIMIT $3 OFFSET $4`
	if types == nil {
		types = []string{}
	}
	rows, err := r.q.Query(ctx, query, organizationID, types, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessEntity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
