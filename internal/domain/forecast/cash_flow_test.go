package forecast_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retailflow-erp/internal/domain"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
)

var cashNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(txType entity.TransactionType, amount string, date time.Time) entity.Transaction {
	return entity.Transaction{Type: txType, Amount: money(amount), Date: date}
}

func containsSubstr(t *testing.T, haystack []string, substr string) {
	t.Helper()
	for _, s := range haystack {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("ningún elemento contiene %q: %v", substr, haystack)
}

func TestProjectCashFlow_HorizonteInvalido(t *testing.T) {
	for _, days := range []int{-1, 0, 6, 181, 365} {
		_, err := forecast.ProjectCashFlow(forecast.CashFlowInput{}, cashNow, days)
		require.Error(t, err, "days=%d debe rechazarse", days)
		assert.ErrorIs(t, err, domain.ErrInvalidInput,
			"el horizonte fuera de [7, 180] es entrada inválida, no se recorta")
	}
}

func TestProjectCashFlow_BordesDelHorizonte(t *testing.T) {
	for _, days := range []int{forecast.HorizonMinDays, forecast.HorizonMaxDays} {
		proj, err := forecast.ProjectCashFlow(forecast.CashFlowInput{}, cashNow, days)
		require.NoError(t, err, "days=%d es válido (rango inclusivo)", days)
		assert.Len(t, proj.Days, days, "un punto por día del horizonte")
	}
}

// Sin historial ni órdenes pendientes la proyección es plana: el saldo se
// mantiene constante en todo el horizonte.
func TestProjectCashFlow_SinDatosSaldoConstante(t *testing.T) {
	in := forecast.CashFlowInput{CurrentBalance: money("5000")}
	proj, err := forecast.ProjectCashFlow(in, cashNow, 30)
	require.NoError(t, err)

	for i, d := range proj.Days {
		assert.True(t, d.ProjectedBalance.Equal(money("5000")),
			"día %d: saldo %s debería ser 5000", i+1, d.ProjectedBalance)
		assert.Equal(t, forecast.ConfidenceLow, d.Confidence)
		assert.Empty(t, d.Alerts)
	}
	assert.Zero(t, proj.CriticalCount)
	assert.Zero(t, proj.WarningCount)
	assert.Empty(t, proj.Insights)
}

func TestProjectCashFlow_FechasConsecutivas(t *testing.T) {
	proj, err := forecast.ProjectCashFlow(forecast.CashFlowInput{}, cashNow, 7)
	require.NoError(t, err)

	for i, d := range proj.Days {
		want := cashNow.AddDate(0, 0, i+1)
		assert.Equal(t, want, d.Date, "las fechas empiezan mañana y son consecutivas")
	}
}

// Una orden CONFIRMED cobra a orderDate+3 días; ese día la proyección usa el
// monto agendado con confianza alta en lugar del promedio histórico.
func TestProjectCashFlow_CobroAgendadoDeVentaConfirmada(t *testing.T) {
	in := forecast.CashFlowInput{
		CurrentBalance: money("1000"),
		PendingSales: []entity.SalesOrder{
			{Status: entity.OrderConfirmed, Total: money("300"), OrderDate: cashNow},
		},
	}
	proj, err := forecast.ProjectCashFlow(in, cashNow, 14)
	require.NoError(t, err)

	day := proj.Days[2] // now+3
	assert.True(t, day.Income.Equal(money("300")), "income del día de cobro: %s", day.Income)
	assert.Equal(t, forecast.ConfidenceHigh, day.Confidence)
	assert.True(t, day.ProjectedBalance.Equal(money("1300")))

	containsSubstr(t, proj.Insights, "cobros de órdenes de venta pendientes")
}

// Una orden PENDING cobra a orderDate+7; dos órdenes con la misma fecha de
// cobro se acumulan en el mismo día.
func TestProjectCashFlow_CobrosPendientesSeAcumulan(t *testing.T) {
	in := forecast.CashFlowInput{
		CurrentBalance: money("1000"),
		PendingSales: []entity.SalesOrder{
			{Status: entity.OrderPending, Total: money("200"), OrderDate: cashNow},
			{Status: entity.OrderPending, Total: money("150"), OrderDate: cashNow},
		},
	}
	proj, err := forecast.ProjectCashFlow(in, cashNow, 14)
	require.NoError(t, err)

	day := proj.Days[6] // now+7
	assert.True(t, day.Income.Equal(money("350")), "los cobros del mismo día se suman: %s", day.Income)
}

// Una orden de compra paga en expectedDate si existe; sin expectedDate cae a
// createdAt+14. Fechas fuera del horizonte no afectan la proyección.
func TestProjectCashFlow_PagosDeCompras(t *testing.T) {
	expected := cashNow.AddDate(0, 0, 5)
	farAway := cashNow.AddDate(0, 0, 90)
	in := forecast.CashFlowInput{
		CurrentBalance: money("10000"),
		PendingPurchases: []entity.PurchaseOrder{
			{Status: entity.PurchaseApproved, Total: money("2500"), ExpectedDate: &expected, CreatedAt: cashNow},
			{Status: entity.PurchaseOrdered, Total: money("9999"), ExpectedDate: &farAway, CreatedAt: cashNow},
		},
	}
	proj, err := forecast.ProjectCashFlow(in, cashNow, 30)
	require.NoError(t, err)

	day := proj.Days[4] // now+5
	assert.True(t, day.Expenses.Equal(money("2500")), "pago en expectedDate: %s", day.Expenses)
	assert.Equal(t, forecast.ConfidenceHigh, day.Confidence)

	// la orden a 90 días queda fuera del horizonte de 30
	total := decimal.Zero
	for _, d := range proj.Days {
		total = total.Add(d.Expenses)
	}
	assert.True(t, total.Equal(money("2500")), "solo el pago dentro del horizonte cuenta: %s", total)

	containsSubstr(t, proj.Insights, "órdenes de compra por pagar")
}

// Tres egresos con el mismo monto en meses distintos forman un patrón
// recurrente: se aplica en los días cuyo día-de-mes cae a ±2 del promedio,
// con confianza media.
func TestProjectCashFlow_PatronRecurrente(t *testing.T) {
	history := []entity.Transaction{
		tx(entity.TransactionExpense, "2800.00", time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)),
		tx(entity.TransactionExpense, "2800.00", time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)),
		tx(entity.TransactionExpense, "2800.00", time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)),
	}
	in := forecast.CashFlowInput{
		CurrentBalance: money("100000"),
		History:        history,
	}
	proj, err := forecast.ProjectCashFlow(in, cashNow, 30)
	require.NoError(t, err)

	// 1 de abril = día 17 del horizonte (índice 16)
	april1 := proj.Days[16]
	require.Equal(t, 1, april1.Date.Day())
	assert.True(t, april1.Expenses.Equal(money("2800")),
		"el día del patrón se proyecta el monto recurrente: %s", april1.Expenses)
	assert.Equal(t, forecast.ConfidenceMedium, april1.Confidence)

	// un día lejos del patrón usa el promedio histórico (8400/30)
	march20 := proj.Days[4]
	assert.True(t, march20.Expenses.Equal(money("280")),
		"día sin eventos usa el promedio diario: %s", march20.Expenses)

	containsSubstr(t, proj.Insights, "patrones de transacciones recurrentes")
}

// Dos ocurrencias no bastan para un patrón (mínimo 3).
func TestProjectCashFlow_DosOcurrenciasNoSonPatron(t *testing.T) {
	history := []entity.Transaction{
		tx(entity.TransactionExpense, "500.00", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)),
		tx(entity.TransactionExpense, "500.00", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}
	proj, err := forecast.ProjectCashFlow(forecast.CashFlowInput{
		CurrentBalance: money("100000"),
		History:        history,
	}, cashNow, 30)
	require.NoError(t, err)

	for _, s := range proj.Insights {
		assert.NotContains(t, s, "patrones", "sin 3 ocurrencias no hay patrón recurrente")
	}
}

// Si la proyección cruza a negativo, cada día en rojo suma al conteo crítico,
// lleva alerta y el primer cruce aparece en los insights.
func TestProjectCashFlow_SaldoNegativo(t *testing.T) {
	history := []entity.Transaction{
		// 3000 de egresos en la ventana → promedio diario 100
		tx(entity.TransactionExpense, "1000.00", cashNow.AddDate(0, 0, -10)),
		tx(entity.TransactionExpense, "1200.00", cashNow.AddDate(0, 0, -20)),
		tx(entity.TransactionExpense, "800.00", cashNow.AddDate(0, 0, -25)),
	}
	proj, err := forecast.ProjectCashFlow(forecast.CashFlowInput{
		CurrentBalance: money("350"),
		History:        history,
	}, cashNow, 30)
	require.NoError(t, err)

	// 350 - 100/día: negativo a partir del día 4
	assert.Equal(t, 27, proj.CriticalCount)
	assert.True(t, proj.Days[3].ProjectedBalance.IsNegative())
	assert.Contains(t, proj.Days[3].Alerts, "Saldo negativo previsto")

	containsSubstr(t, proj.Insights,
		fmt.Sprintf("negativo en %d días", 4))
}

// Días con saldo positivo pero bajo el 20% del actual cuentan como warning.
func TestProjectCashFlow_AlertaCajaBaja(t *testing.T) {
	history := []entity.Transaction{
		tx(entity.TransactionExpense, "3000.00", cashNow.AddDate(0, 0, -10)),
	}
	// promedio diario 100; saldo 1000, piso 200: bajo el piso en los días
	// 9 y 10, negativo del 11 en adelante
	proj, err := forecast.ProjectCashFlow(forecast.CashFlowInput{
		CurrentBalance: money("1000"),
		History:        history,
	}, cashNow, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, proj.WarningCount)
	warned := false
	for _, d := range proj.Days {
		for _, a := range d.Alerts {
			if a == "Alerta de caja baja" {
				warned = true
			}
		}
	}
	assert.True(t, warned, "debe alertarse la caja baja antes del negativo")
}
