package dto

import "github.com/shopspring/decimal"

// CustomerHealthDTO puntaje de salud de un cliente.
type CustomerHealthDTO struct {
	CustomerID         string          `json:"customerId"`
	CustomerName       string          `json:"customerName"`
	Email              string          `json:"email,omitempty"`
	HealthScore        int             `json:"healthScore"` // 0-100
	Status             string          `json:"status"`      // healthy|at-risk|critical
	LastOrderDate      *string         `json:"lastOrderDate"`      // YYYY-MM-DD o null
	DaysSinceLastOrder *int            `json:"daysSinceLastOrder"` // null si nunca ha comprado
	TotalOrders        int             `json:"totalOrders"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue  decimal.Decimal `json:"averageOrderValue"`
	OrderFrequency     float64         `json:"orderFrequency"` // órdenes por mes, 2 decimales
	Trend              string          `json:"trend"`          // improving|stable|declining
	RiskFactors        []string        `json:"riskFactors"`
	Recommendations    []string        `json:"recommendations"`
}

// CustomerHealthSummaryDTO conteo de clientes por estado.
type CustomerHealthSummaryDTO struct {
	Healthy  int `json:"healthy"`
	AtRisk   int `json:"atRisk"`
	Critical int `json:"critical"`
}

// CustomerHealthResponseDTO respuesta completa de GET /api/customers/health.
type CustomerHealthResponseDTO struct {
	Customers []CustomerHealthDTO      `json:"customers"`
	Summary   CustomerHealthSummaryDTO `json:"summary"`
}
