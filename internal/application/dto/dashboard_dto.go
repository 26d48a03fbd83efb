package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Metrics     DashboardMetrics `json:"metrics"`
	RecentSales []RecentSale     `json:"recent_sales"`
	SalesChart  []SalesPoint     `json:"sales_chart"`
	MonthLabel  string           `json:"month_label"` // ej: "Octubre 2026"
	GeneratedAt time.Time        `json:"generated_at"`
}

// DashboardMetrics KPIs del mes en curso y cartera total.
type DashboardMetrics struct {
	Sales       decimal.Decimal `json:"sales"`        // órdenes CONFIRMED del mes
	Revenue     decimal.Decimal `json:"revenue"`      // pagos cobrados en el mes
	Receivables decimal.Decimal `json:"receivables"`  // Σ órdenes no canceladas − Σ pagos
	OrdersCount int             `json:"orders_count"` // órdenes no canceladas del mes
}

// RecentSale fila del widget de ventas recientes.
type RecentSale struct {
	ID            string          `json:"id"`
	EntityName    string          `json:"entity_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SalesPoint un día de la serie de ventas.
type SalesPoint struct {
	Date  string          `json:"date"`  // yyyy-MM-dd
	Label string          `json:"label"` // dd/MM
	Total decimal.Decimal `json:"total"`
}
