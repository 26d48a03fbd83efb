package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. UOM por defecto PZA, Type por defecto PRODUCT.
type CreateProductRequest struct {
	SKU   string          `json:"sku" validate:"omitempty,max=64"`
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	UOM   string          `json:"uom" validate:"omitempty,max=10"`
	Type  string          `json:"type" validate:"omitempty,oneof=PRODUCT SERVICE"`
	Price decimal.Decimal `json:"price" validate:"dgte=0,dplaces=2"`
	Stock decimal.Decimal `json:"stock" validate:"dgte=0,dplaces=2"`
}

// UpdateProductRequest actualización parcial. El stock solo cambia por órdenes o por Stock explícito.
type UpdateProductRequest struct {
	SKU   *string          `json:"sku" validate:"omitempty,max=64"`
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UOM   *string          `json:"uom" validate:"omitempty,min=1,max=10"`
	Type  *string          `json:"type" validate:"omitempty,oneof=PRODUCT SERVICE"`
	Price *decimal.Decimal `json:"price" validate:"omitempty,dgte=0,dplaces=2"`
	Stock *decimal.Decimal `json:"stock" validate:"omitempty,dgte=0,dplaces=2"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku,omitempty"`
	Name      string          `json:"name"`
	UOM       string          `json:"uom"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
	Archived  bool            `json:"archived"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
