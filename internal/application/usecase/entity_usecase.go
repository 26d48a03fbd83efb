package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/pkg/validate"
)

// EntityUseCase alta y consulta de clientes/proveedores.
type EntityUseCase struct {
	repo repository.EntityRepository
}

// NewEntityUseCase construye el caso de uso.
func NewEntityUseCase(repo repository.EntityRepository) *EntityUseCase {
	return &EntityUseCase{repo: repo}
}

// Create registra la entidad. El RFC se guarda en mayúsculas.
func (uc *EntityUseCase) Create(ctx context.Context, tc tenant.Context, in dto.CreateEntityRequest) (*dto.EntityResponse, error) {
	in.TaxID = strings.ToUpper(strings.TrimSpace(in.TaxID))
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if in.Type == "" {
		in.Type = entity.EntityTypeClient
	}
	now := time.Now()
	e := &entity.BusinessEntity{
		ID:             uuid.New().String(),
		OrganizationID: tc.OrganizationID,
		Type:           in.Type,
		CommercialName: strings.TrimSpace(in.CommercialName),
		LegalName:      strings.TrimSpace(in.LegalName),
		TaxID:          in.TaxID,
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PostalCode:     in.PostalCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

// List lista entidades; entityType vacío = todas.
func (uc *EntityUseCase) List(ctx context.Context, tc tenant.Context, entityType string, page dto.PageRequest) (*dto.EntityListResponse, error) {
	var types []string
	switch entityType {
	case "":
	case entity.EntityTypeClient, entity.EntityTypeSupplier, entity.EntityTypeBoth:
		types = []string{entityType}
	default:
		return nil, domain.NewValidationError("type", "debe ser uno de: CLIENT, SUPPLIER, BOTH")
	}
	return uc.list(ctx, tc, types, page)
}

// ListCustomers entidades que pueden recibir órdenes (CLIENT o BOTH).
func (uc *EntityUseCase) ListCustomers(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.EntityListResponse, error) {
	return uc.list(ctx, tc, []string{entity.EntityTypeClient, entity.EntityTypeBoth}, page)
}

func (uc *EntityUseCase) list(ctx context.Context, tc tenant.Context, types []string, page dto.PageRequest) (*dto.EntityListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByOrganization(ctx, tc.OrganizationID, types, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntityResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntityResponse(e))
	}
	return &dto.EntityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toEntityResponse(e *entity.BusinessEntity) *dto.EntityResponse {
	return &dto.EntityResponse{
		ID:             e.ID,
		Type:           e.Type,
		CommercialName: e.CommercialName,
		LegalName:      e.LegalName,
		TaxID:          e.TaxID,
		Email:          e.Email,
		PostalCode:     e.PostalCode,
		CreatedAt:      e.CreatedAt,
	}
}
