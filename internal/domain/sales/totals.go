package sales

import (
	"strings"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	// TaxRate IVA fijo (16%).
	TaxRate = decimal.RequireFromString("0.16")
	// PaidTolerance diferencia máxima para considerar una orden pagada.
	PaidTolerance = decimal.RequireFromString("0.01")
)

// Line cantidad y precio unitario de una partida.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Totals subtotal, IVA y total redondeados a 2 decimales. Total = Subtotal + Tax.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals servicio de dominio de totales de venta.
// Total = round(Σ(cant × precio) × 1.16, 2); Tax = Total − round(Σ, 2).
func CalculateTotals(lines []Line) Totals {
	raw := decimal.Zero
	for _, l := range lines {
		raw = raw.Add(l.Quantity.Mul(l.UnitPrice))
	}
	subtotal := raw.Round(2)
	total := raw.Mul(decimal.NewFromInt(1).Add(TaxRate)).Round(2)
	return Totals{Subtotal: subtotal, Tax: total.Sub(subtotal), Total: total}
}

// TotalsFromItems calcula los totales de las partidas de una orden.
func TotalsFromItems(items []*entity.OrderItem) Totals {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return CalculateTotals(lines)
}

// DerivePaymentStatus PAID si pagado ≥ total − 0.01, PARTIAL si pagado > 0, si no UNPAID.
func DerivePaymentStatus(total, paid decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(total.Sub(PaidTolerance)):
		return entity.PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return entity.PaymentStatusPartial
	default:
		return entity.PaymentStatusUnpaid
	}
}

// PendingBalance saldo por cobrar; nunca negativo.
func PendingBalance(total, paid decimal.Decimal) decimal.Decimal {
	b := total.Sub(paid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// ExceedsBalance indica si amount supera total − pagado (sin tolerancia).
func ExceedsBalance(total, paid, amount decimal.Decimal) bool {
	return amount.GreaterThan(total.Sub(paid))
}

// ShortID primeros 8 caracteres del ID en mayúsculas (folio visible).
func ShortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
