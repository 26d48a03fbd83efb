// Package tenant resuelve la organización activa del usuario autenticado.
package tenant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
)

// Context usuario, organización activa y rol. Se pasa explícitamente a cada caso de uso.
type Context struct {
	UserID         string
	OrganizationID string
	Role           string
}

// CanManage OWNER o ADMIN.
func (c Context) CanManage() bool {
	return c.Role == entity.RoleOwner || c.Role == entity.RoleAdmin
}

// Resolver mapea un usuario a su membresía.
type Resolver struct {
	memberships repository.MembershipRepository
}

// NewResolver construye el resolver.
func NewResolver(memberships repository.MembershipRepository) *Resolver {
	return &Resolver{memberships: memberships}
}

// Resolve determina la organización activa.
//   - requestedOrgID no vacío: el usuario debe ser miembro, si no ErrNoMembership.
//   - vacío y una sola membresía: esa.
//   - vacío y varias: ErrTenantAmbiguous.
//   - sin membresías: ErrNoMembership.
func (r *Resolver) Resolve(ctx context.Context, userID, requestedOrgID string) (Context, error) {
	if userID == "" {
		return Context{}, domain.ErrUnauthorized
	}
	if requestedOrgID != "" {
		if _, err := uuid.Parse(requestedOrgID); err != nil {
			return Context{}, fmt.Errorf("%w: X-Organization-ID no es un UUID", domain.ErrInvalidInput)
		}
		m, err := r.memberships.GetByUserAndOrganization(ctx, userID, requestedOrgID)
		if err != nil {
			return Context{}, fmt.Errorf("tenant: obtener membresía: %w", err)
		}
		if m == nil {
			return Context{}, domain.ErrNoMembership
		}
		return fromMembership(m), nil
	}

	list, err := r.memberships.ListByUser(ctx, userID)
	if err != nil {
		return Context{}, fmt.Errorf("tenant: listar membresías: %w", err)
	}
	switch len(list) {
	case 0:
		return Context{}, domain.ErrNoMembership
	case 1:
		return fromMembership(list[0]), nil
	default:
		return Context{}, domain.ErrTenantAmbiguous
	}
}

// ListMemberships organizaciones del usuario (selector de organización).
func (r *Resolver) ListMemberships(ctx context.Context, userID string) ([]*entity.Membership, error) {
	list, err := r.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tenant: listar membresías: %w", err)
	}
	return list, nil
}

func fromMembership(m *entity.Membership) Context {
	return Context{UserID: m.UserID, OrganizationID: m.OrganizationID, Role: m.Role}
}
