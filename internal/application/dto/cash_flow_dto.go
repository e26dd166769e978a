package dto

import "github.com/shopspring/decimal"

// CashFlowRequest parámetros para GET /api/forecast/cash-flow.
type CashFlowRequest struct {
	Days int `query:"days"` // horizonte en días, obligatorio, 7-180 inclusive
}

// CashFlowDayDTO proyección de un día del horizonte.
type CashFlowDayDTO struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Confidence       string          `json:"confidence"` // high|medium|low
	Alerts           []string        `json:"alerts"`
}

// CashFlowWarningsDTO conteo de días con alertas.
type CashFlowWarningsDTO struct {
	Critical int `json:"critical"` // días con saldo negativo previsto
	Warning  int `json:"warning"`  // días con saldo bajo el 20% del actual
}

// CashFlowForecastDTO respuesta completa de GET /api/forecast/cash-flow.
type CashFlowForecastDTO struct {
	CurrentBalance decimal.Decimal     `json:"currentBalance"`
	Forecast       []CashFlowDayDTO    `json:"forecast"`
	Warnings       CashFlowWarningsDTO `json:"warnings"`
	Insights       []string            `json:"insights"`
}
