package validate_test

import (
	"testing"

	"github.com/jhoicas/Axioma-api/pkg/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type item struct {
	Quantity decimal.Decimal `json:"quantity" validate:"dgte=1"`
	Price    decimal.Decimal `json:"price" validate:"dgte=0,dplaces=2"`
}

type sample struct {
	Slug   string           `json:"slug" validate:"omitempty,slug"`
	TaxID  string           `json:"tax_id" validate:"omitempty,rfc"`
	Amount decimal.Decimal  `json:"amount" validate:"dgt=0"`
	Opt    *decimal.Decimal `json:"opt" validate:"omitempty,dgte=0"`
	Items  []item           `json:"items" validate:"required,min=1,dive"`
}

func TestStruct_Valid(t *testing.T) {
	s := sample{
		Slug:   "mi-empresa",
		TaxID:  "XAXX010101000",
		Amount: decimal.RequireFromString("10.50"),
		Items:  []item{{Quantity: decimal.NewFromInt(1), Price: decimal.RequireFromString("99.99")}},
	}
	assert.Nil(t, validate.Struct(s))
}

func TestStruct_FieldMessages(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	s := sample{
		Slug:   "Mi Empresa",
		TaxID:  "123",
		Amount: decimal.Zero,
		Opt:    &neg,
		Items:  []item{{Quantity: decimal.Zero, Price: decimal.RequireFromString("1.005")}},
	}
	fields := validate.Struct(s)
	assert.Contains(t, fields, "slug")
	assert.Equal(t, "RFC inválido", fields["tax_id"])
	assert.Equal(t, "debe ser mayor que 0", fields["amount"])
	assert.Contains(t, fields, "opt")
	assert.Contains(t, fields, "items[0].quantity")
	assert.Equal(t, "máximo 2 decimales", fields["items[0].price"])
}

func TestStruct_EmptyItems(t *testing.T) {
	fields := validate.Struct(sample{Amount: decimal.NewFromInt(1)})
	assert.Equal(t, "es obligatorio", fields["items"])
}
