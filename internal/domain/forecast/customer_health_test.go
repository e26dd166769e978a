package forecast_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
)

var healthNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func order(daysAgo int, total string) entity.SalesOrder {
	return entity.SalesOrder{
		Status:    entity.OrderDelivered,
		Total:     money(total),
		OrderDate: healthNow.AddDate(0, 0, -daysAgo),
	}
}

func TestScoreCustomerHealth_ClienteSinOrdenes(t *testing.T) {
	res := forecast.ScoreCustomerHealth(nil, healthNow)

	// base 50, -20 por no comprar nunca, -10 por frecuencia cero
	assert.Equal(t, 20, res.Score)
	assert.Equal(t, forecast.StatusCritical, res.Status)
	assert.Nil(t, res.LastOrderDate)
	assert.Nil(t, res.DaysSinceLastOrder)
	assert.Zero(t, res.OrderFrequency)
	assert.Contains(t, res.RiskFactors, "Sin órdenes todavía")
	assert.Contains(t, res.Recommendations,
		"Enviar oferta de bienvenida para motivar la primera compra")
	require.Len(t, res.Recommendations, len(res.RiskFactors),
		"cada factor de riesgo lleva una recomendación pareada")
}

func TestScoreCustomerHealth_ClienteIdealTopeEnCien(t *testing.T) {
	// Compras recientes, frecuentes, de alto valor y en ascenso: el puntaje
	// bruto supera 100 y debe recortarse al tope
	var orders []entity.SalesOrder
	for i := 0; i < 6; i++ {
		orders = append(orders, order(5+i*4, "2000"))
	}
	orders = append(orders, order(40, "2000"), order(50, "2000"))

	res := forecast.ScoreCustomerHealth(orders, healthNow)

	assert.Equal(t, 100, res.Score, "el puntaje nunca supera 100")
	assert.Equal(t, forecast.StatusHealthy, res.Status)
	assert.Equal(t, forecast.TrendImproving, res.Trend)
	assert.Empty(t, res.RiskFactors)
	assert.Empty(t, res.Recommendations, "un cliente sano no recibe recomendación genérica")
	assert.True(t, res.TotalRevenue.Equal(money("16000")))
	assert.True(t, res.AverageOrderValue.Equal(money("2000")))
}

func TestScoreCustomerHealth_ClienteDormido(t *testing.T) {
	orders := []entity.SalesOrder{order(120, "50"), order(130, "50")}

	res := forecast.ScoreCustomerHealth(orders, healthNow)

	// base 50, -15 por 120 días sin comprar; ticket y frecuencia bajos
	// suman riesgos sin puntos
	assert.Equal(t, 35, res.Score)
	assert.Equal(t, forecast.StatusCritical, res.Status)
	require.NotNil(t, res.DaysSinceLastOrder)
	assert.Equal(t, 120, *res.DaysSinceLastOrder)
	assert.Equal(t, forecast.TrendStable, res.Trend)
	containsSubstr(t, res.RiskFactors, "alto riesgo de fuga")
	containsSubstr(t, res.RiskFactors, "Ticket promedio bajo")
	containsSubstr(t, res.RiskFactors, "Frecuencia de compra baja")
	assert.NotEmpty(t, res.Recommendations)
}

func TestScoreCustomerHealth_TendenciaEnDescenso(t *testing.T) {
	// 1 orden en los últimos 30 días contra 4 en la ventana anterior
	orders := []entity.SalesOrder{
		order(10, "50"),
		order(35, "50"), order(40, "50"), order(45, "50"), order(55, "50"),
	}

	res := forecast.ScoreCustomerHealth(orders, healthNow)

	assert.Equal(t, forecast.TrendDeclining, res.Trend)
	containsSubstr(t, res.RiskFactors, "Frecuencia de órdenes en descenso")
}

func TestScoreCustomerHealth_SiempreEnRango(t *testing.T) {
	// 1000 órdenes de $1: frecuencia y recencia extremas con ticket ínfimo
	var micro []entity.SalesOrder
	for i := 0; i < 1000; i++ {
		micro = append(micro, order(i%200, "1"))
	}

	scenarios := [][]entity.SalesOrder{
		nil,
		{order(1, "100000")},
		{order(400, "1")},
		{order(10, "5000"), order(20, "5000"), order(30, "5000"), order(40, "5000")},
		{order(90, "50"), order(91, "50"), order(92, "50")},
		micro,
	}
	for i, orders := range scenarios {
		res := forecast.ScoreCustomerHealth(orders, healthNow)
		assert.GreaterOrEqual(t, res.Score, 0, "escenario %d", i)
		assert.LessOrEqual(t, res.Score, 100, "escenario %d", i)
		assert.Equal(t, forecast.StatusForScore(res.Score), res.Status, "escenario %d", i)
	}
}

func TestStatusForScore_Cortes(t *testing.T) {
	assert.Equal(t, forecast.StatusHealthy, forecast.StatusForScore(70))
	assert.Equal(t, forecast.StatusAtRisk, forecast.StatusForScore(69))
	assert.Equal(t, forecast.StatusAtRisk, forecast.StatusForScore(40))
	assert.Equal(t, forecast.StatusCritical, forecast.StatusForScore(39))
}

// El valor total de la relación aporta puntos extra por encima de 5000 y 10000.
func TestScoreCustomerHealth_ValorDeLaRelacion(t *testing.T) {
	base := []entity.SalesOrder{order(70, "300"), order(85, "300"), order(100, "300")}
	big := []entity.SalesOrder{order(70, "4000"), order(85, "4000"), order(100, "4000")}

	resBase := forecast.ScoreCustomerHealth(base, healthNow)
	resBig := forecast.ScoreCustomerHealth(big, healthNow)

	assert.Greater(t, resBig.Score, resBase.Score,
		"a igual comportamiento, más facturación acumulada puntúa más alto")
}
