package entity

import "time"

// Organization es el tenant: todos los datos de negocio cuelgan de una organización.
type Organization struct {
	ID        string
	Name      string
	Slug      string // único, ^[a-z0-9-]+$
	TaxID     string // RFC (opcional)
	Address   string
	Phone     string
	Website   string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles de membresía.
const (
	RoleOwner      = "OWNER"
	RoleAdmin      = "ADMIN"
	RoleMember     = "MEMBER"
	RoleAccountant = "ACCOUNTANT"
)

// Membership relaciona un usuario con una organización y su rol.
type Membership struct {
	ID               string
	UserID           string
	OrganizationID   string
	Role             string
	CreatedAt        time.Time
	OrganizationName string // solo lectura (JOIN)
	OrganizationSlug string // solo lectura (JOIN)
	UserEmail        string // solo lectura (JOIN)
	UserFullName     string // solo lectura (JOIN)
}

// CanManageOrganization indica si el rol puede editar datos de la organización.
func (m *Membership) CanManageOrganization() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
