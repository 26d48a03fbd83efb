package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/pkg/validate"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock lo mueven las órdenes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Los servicios siempre nacen con stock 0.
func (uc *ProductUseCase) Create(ctx context.Context, tc tenant.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if in.UOM == "" {
		in.UOM = entity.DefaultUOM
	}
	if in.Type == "" {
		in.Type = entity.ProductTypeProduct
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		OrganizationID: tc.OrganizationID,
		SKU:            strings.TrimSpace(in.SKU),
		Name:           strings.TrimSpace(in.Name),
		UOM:            strings.ToUpper(in.UOM),
		Type:           in.Type,
		Price:          in.Price,
		Stock:          in.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !product.TracksStock() {
		product.Stock = decimal.Zero
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: el SKU %s ya existe en la organización", domain.ErrDuplicate, product.SKU)
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la organización (incluye archivados, para el detalle de órdenes antiguas).
func (uc *ProductUseCase) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, tc.OrganizationID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return toProductResponse(p), nil
}

// List lista productos activos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListActive(ctx, tc.OrganizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica los campos enviados. Stock explícito funciona como ajuste manual de inventario.
func (uc *ProductUseCase) Update(ctx context.Context, tc tenant.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	p, err := uc.repo.GetByID(ctx, tc.OrganizationID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if in.SKU != nil {
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.UOM != nil {
		p.UOM = strings.ToUpper(*in.UOM)
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	p.UpdatedAt = time.Now()
	var stock *decimal.Decimal
	if in.Stock != nil && p.TracksStock() {
		stock = in.Stock
	}
	if err := uc.repo.Update(ctx, p, stock); err != nil {
		return nil, err
	}
	if stock != nil {
		p.Stock = *stock
	}
	return toProductResponse(p), nil
}

// Archive borrado lógico: desaparece del catálogo pero las órdenes lo conservan.
func (uc *ProductUseCase) Archive(ctx context.Context, tc tenant.Context, id string) error {
	ok, err := uc.repo.Archive(ctx, tc.OrganizationID, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		UOM:       p.UOM,
		Type:      p.Type,
		Price:     p.Price,
		Stock:     p.Stock,
		Archived:  p.Archived,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
