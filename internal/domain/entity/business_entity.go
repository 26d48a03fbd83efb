package entity

import "time"

// Tipos de entidad comercial.
const (
	EntityTypeClient   = "CLIENT"
	EntityTypeSupplier = "SUPPLIER"
	EntityTypeBoth     = "BOTH"
)

// BusinessEntity es un cliente y/o proveedor de la organización.
type BusinessEntity struct {
	ID             string
	OrganizationID string
	Type           string // CLIENT, SUPPLIER, BOTH
	CommercialName string
	LegalName      string
	TaxID          string // RFC en mayúsculas
	Email          string
	PostalCode     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCustomer indica si la entidad puede recibir órdenes de venta.
func (e *BusinessEntity) IsCustomer() bool {
	return e.Type == EntityTypeClient || e.Type == EntityTypeBoth
}
