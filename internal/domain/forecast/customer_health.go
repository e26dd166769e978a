package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// HealthResult puntaje de salud de un cliente y sus métricas derivadas.
// Score siempre queda en [0, 100] sin importar lo extremo del historial.
type HealthResult struct {
	Score              int
	Status             HealthStatus
	Trend              Trend
	TotalOrders        int
	TotalRevenue       decimal.Decimal
	AverageOrderValue  decimal.Decimal
	LastOrderDate      *time.Time
	DaysSinceLastOrder *int // nil si nunca ha comprado
	OrderFrequency     float64 // órdenes por mes
	RiskFactors        []string
	Recommendations    []string
}

// ScoreCustomerHealth calcula el puntaje 0-100 de un cliente a partir de su
// historial completo de órdenes (cualquier estado, como lo ve el área
// comercial). Scoring aditivo desde una base de 50: recencia, frecuencia,
// valor, tendencia y valor total de la relación; ver los umbrales en
// thresholds.go. Cada factor de riesgo lleva una recomendación pareada; un
// cliente no-healthy sin recomendación específica recibe una genérica.
func ScoreCustomerHealth(orders []entity.SalesOrder, now time.Time) HealthResult {
	res := HealthResult{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}

	var lastOrder, firstOrder *time.Time
	for i := range orders {
		res.TotalRevenue = res.TotalRevenue.Add(orders[i].Total)
		d := orders[i].OrderDate
		if lastOrder == nil || d.After(*lastOrder) {
			t := d
			lastOrder = &t
		}
		if firstOrder == nil || d.Before(*firstOrder) {
			t := d
			firstOrder = &t
		}
	}

	if res.TotalOrders > 0 {
		res.AverageOrderValue = res.TotalRevenue.
			Div(decimal.NewFromInt(int64(res.TotalOrders))).Round(2)
	}

	res.LastOrderDate = lastOrder
	if lastOrder != nil {
		days := int(now.Sub(*lastOrder).Hours() / 24)
		res.DaysSinceLastOrder = &days
	}

	// Frecuencia: órdenes por mes desde la primera compra (denominador mínimo 1 mes)
	monthsActive := 1.0
	if firstOrder != nil {
		m := now.Sub(*firstOrder).Hours() / 24 / 30
		if m > monthsActive {
			monthsActive = m
		}
	}
	res.OrderFrequency = float64(res.TotalOrders) / monthsActive

	res.Trend = orderTrend(orders, now)

	score := 50

	// Recencia
	switch {
	case res.DaysSinceLastOrder == nil:
		score -= 20
		res.addRisk("Sin órdenes todavía",
			"Enviar oferta de bienvenida para motivar la primera compra")
	case *res.DaysSinceLastOrder <= 30:
		score += 25
	case *res.DaysSinceLastOrder <= 60:
		score += 15
	case *res.DaysSinceLastOrder <= 90:
		score += 5
		res.addRisk(fmt.Sprintf("Sin órdenes hace %d días", *res.DaysSinceLastOrder),
			"Enviar correo de reactivación con ofertas personalizadas")
	default:
		score -= 15
		res.addRisk(fmt.Sprintf("Sin órdenes hace %d días (alto riesgo de fuga)", *res.DaysSinceLastOrder),
			"Acción inmediata: agendar llamada comercial o enviar oferta de recuperación")
	}

	// Frecuencia
	switch {
	case res.OrderFrequency >= 2:
		score += 25
	case res.OrderFrequency >= 1:
		score += 15
	case res.OrderFrequency >= 0.5:
		score += 5
	case res.TotalOrders == 0:
		score -= 10
	default:
		res.addRisk("Frecuencia de compra baja",
			"Considerar suscripción o programa de fidelización")
	}

	// Valor promedio por orden
	switch {
	case res.AverageOrderValue.GreaterThan(decimal.NewFromInt(500)):
		score += 25
	case res.AverageOrderValue.GreaterThan(decimal.NewFromInt(200)):
		score += 15
	case res.AverageOrderValue.GreaterThan(decimal.NewFromInt(100)):
		score += 5
	case res.TotalOrders > 0:
		res.addRisk("Ticket promedio bajo",
			"Sugerir paquetes de productos o ventas adicionales")
	}

	// Tendencia
	switch {
	case res.Trend == TrendImproving:
		score += 20
	case res.Trend == TrendStable && res.TotalOrders > 3:
		score += 10
	case res.Trend == TrendDeclining:
		score -= 10
		res.addRisk("Frecuencia de órdenes en descenso",
			"Investigar la causa de la caída y ofrecer incentivos")
	}

	// Valor total de la relación
	if res.TotalRevenue.GreaterThan(decimal.NewFromInt(10000)) {
		score += 10
	} else if res.TotalRevenue.GreaterThan(decimal.NewFromInt(5000)) {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.Score = score
	res.Status = StatusForScore(score)

	if len(res.Recommendations) == 0 && res.Status != StatusHealthy {
		res.Recommendations = append(res.Recommendations,
			"Monitorear de cerca al cliente y mantener comunicación regular")
	}

	res.TotalRevenue = res.TotalRevenue.Round(2)
	return res
}

// orderTrend compara las órdenes de los últimos 30 días contra la ventana de
// 30-60 días atrás: improving si recientes > 1.2× previas, declining si
// recientes < 0.8× previas, stable en el resto. Sin suavizado estadístico:
// con muestras pequeñas la señal puede ser ruidosa.
func orderTrend(orders []entity.SalesOrder, now time.Time) Trend {
	thirtyAgo := now.AddDate(0, 0, -30)
	sixtyAgo := now.AddDate(0, 0, -60)

	recent, prior := 0, 0
	for i := range orders {
		d := orders[i].OrderDate
		switch {
		case !d.Before(thirtyAgo):
			recent++
		case !d.Before(sixtyAgo):
			prior++
		}
	}

	if float64(recent) > float64(prior)*trendImproveRatio {
		return TrendImproving
	}
	if float64(recent) < float64(prior)*trendDeclineRatio {
		return TrendDeclining
	}
	return TrendStable
}

func (r *HealthResult) addRisk(risk, recommendation string) {
	r.RiskFactors = append(r.RiskFactors, risk)
	r.Recommendations = append(r.Recommendations, recommendation)
}
