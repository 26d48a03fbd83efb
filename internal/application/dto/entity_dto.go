package dto

import "time"

// CreateEntityRequest alta de cliente/proveedor. Type por defecto CLIENT.
type CreateEntityRequest struct {
	Type           string `json:"type" validate:"omitempty,oneof=CLIENT SUPPLIER BOTH"`
	CommercialName string `json:"commercial_name" validate:"required,min=1,max=200"`
	LegalName      string `json:"legal_name" validate:"omitempty,max=200"`
	TaxID          string `json:"tax_id" validate:"omitempty,rfc"`
	Email          string `json:"email" validate:"omitempty,email"`
	PostalCode     string `json:"postal_code" validate:"omitempty,len=5,numeric"`
}

// EntityResponse salida de una entidad.
type EntityResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	CommercialName string    `json:"commercial_name"`
	LegalName      string    `json:"legal_name,omitempty"`
	TaxID          string    `json:"tax_id,omitempty"`
	Email          string    `json:"email,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EntityListResponse listado paginado de entidades.
type EntityListResponse struct {
	Items []EntityResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
