package repository

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
)

// OrganizationRepository puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	Update(ctx context.Context, org *entity.Organization) error
	UpdateLogo(ctx context.Context, id, logoURL string) error
}

// MembershipRepository puerto de persistencia de membresías usuario ↔ organización.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	// ListByUser devuelve las membresías del usuario con nombre y slug de la organización.
	ListByUser(ctx context.Context, userID string) ([]*entity.Membership, error)
	GetByUserAndOrganization(ctx context.Context, userID, organizationID string) (*entity.Membership, error)
	// ListByOrganization devuelve los miembros con email y nombre del usuario.
	ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Membership, error)
}
