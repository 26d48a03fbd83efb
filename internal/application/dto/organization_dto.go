package dto

import "time"

// CreateOrganizationRequest entrada del onboarding. Si Slug viene vacío se deriva del nombre.
type CreateOrganizationRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Slug    string `json:"slug" validate:"omitempty,slug"`
	TaxID   string `json:"tax_id" validate:"omitempty,rfc"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Website string `json:"website" validate:"omitempty,url"`
}

// UpdateOrganizationRequest actualización parcial (solo campos enviados).
type UpdateOrganizationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Slug    *string `json:"slug" validate:"omitempty,slug"`
	TaxID   *string `json:"tax_id" validate:"omitempty,rfc"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Website *string `json:"website" validate:"omitempty,url"`
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	TaxID     string    `json:"tax_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Website   string    `json:"website,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MembershipResponse organización a la que pertenece el usuario y su rol.
type MembershipResponse struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
	Role             string `json:"role"`
}

// MemberResponse miembro de la organización.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email,omitempty"`
	FullName string    `json:"full_name,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// UploadLogoRequest archivo recibido por multipart.
type UploadLogoRequest struct {
	FileName    string
	ContentType string
	Data        []byte
}
