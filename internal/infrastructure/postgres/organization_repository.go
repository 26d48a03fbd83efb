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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const organizationColumns = `id, name, slug, COALESCE(tax_id, ''), COALESCE(address, ''), COALESCE(phone, ''),
	COALESCE(website, ''), COALESCE(logo_url, ''), created_at, updated_at`

// Create persiste una nueva organización. Slug duplicado -> ErrDuplicate.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, slug, tax_id, address, phone, website, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		org.ID, org.Name, org.Slug, nullIfEmpty(org.TaxID), nullIfEmpty(org.Address), nullIfEmpty(org.Phone),
		nullIfEmpty(org.Website), nullIfEmpty(org.LogoURL), org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID. nil, nil si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Slug, &o.TaxID, &o.Address, &o.Phone, &o.Website, &o.LogoURL, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// Update actualiza los datos generales. El logo se cambia con UpdateLogo.
func (r *OrganizationRepo) Update(ctx context.Context, org *entity.Organization) error {
	query := `
		UPDATE organizations SET name = $2, slug = $3, tax_id = $4, address = $5, phone = $6, website = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		org.ID, org.Name, org.Slug, nullIfEmpty(org.TaxID), nullIfEmpty(org.Address),
		nullIfEmpty(org.Phone), nullIfEmpty(org.Website), org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLogo guarda la URL pública del logo.
func (r *OrganizationRepo) UpdateLogo(ctx context.Context, id, logoURL string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE organizations SET logo_url = $2, updated_at = now() WHERE id = $1`, id, logoURL)
	if err != nil {
		return fmt.Errorf("update organization logo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
