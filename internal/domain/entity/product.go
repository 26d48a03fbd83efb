package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto. Solo PRODUCT maneja existencias.
const (
	ProductTypeProduct = "PRODUCT"
	ProductTypeService = "SERVICE"
)

// DefaultUOM unidad de medida por defecto (pieza).
const DefaultUOM = "PZA"

// Product representa un artículo del catálogo de la organización.
// Archived es borrado lógico: no aparece en listados pero las órdenes lo siguen referenciando.
type Product struct {
	ID             string
	OrganizationID string
	SKU            string // único por organización cuando no está vacío
	Name           string
	UOM            string
	Type           string
	Price          decimal.Decimal
	Stock          decimal.Decimal
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TracksStock indica si el producto descuenta existencias al venderse.
func (p *Product) TracksStock() bool {
	return p.Type == ProductTypeProduct
}
