package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retailflow-erp/internal/domain"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// CashFlowInput snapshot de lectura sobre el que se proyecta el flujo de caja.
// El motor no consulta nada por sí mismo: recibe los agregados y es una
// función pura y determinista de ellos.
type CashFlowInput struct {
	CurrentBalance   decimal.Decimal      // suma con signo de todas las transacciones
	History          []entity.Transaction // transacciones de la ventana histórica
	PendingSales     []entity.SalesOrder  // órdenes PENDING o CONFIRMED
	PendingPurchases []entity.PurchaseOrder // órdenes APPROVED u ORDERED
}

// DayProjection proyección de un día del horizonte.
type DayProjection struct {
	Date             time.Time
	ProjectedBalance decimal.Decimal
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Confidence       Confidence
	Alerts           []string
}

// CashFlowProjection resultado completo de la proyección.
type CashFlowProjection struct {
	CurrentBalance decimal.Decimal
	Days           []DayProjection
	CriticalCount  int // días con saldo negativo previsto
	WarningCount   int // días con saldo bajo el 20% del actual
	Insights       []string
}

// recurringPattern transacción recurrente detectada: mismo (tipo, monto a 2
// decimales) con 3 o más ocurrencias, caracterizada por su día-de-mes promedio.
type recurringPattern struct {
	Type       entity.TransactionType
	Amount     decimal.Decimal
	DayOfMonth int
}

// ProjectCashFlow proyecta el saldo diario de caja para los próximos
// horizonDays días a partir de now. horizonDays debe estar en [7, 180];
// valores fuera de rango se rechazan como entrada inválida, no se recortan.
//
// Para cada día: usa el monto agendado conocido (cobros de órdenes de venta,
// pagos de órdenes de compra), le suma los patrones recurrentes cuyo día-de-mes
// cae a ±2 días, y si nada aplica cae al promedio diario histórico.
func ProjectCashFlow(in CashFlowInput, now time.Time, horizonDays int) (*CashFlowProjection, error) {
	if horizonDays < HorizonMinDays || horizonDays > HorizonMaxDays {
		return nil, fmt.Errorf("%w: days debe estar entre %d y %d",
			domain.ErrInvalidInput, HorizonMinDays, HorizonMaxDays)
	}

	historyDays := historyWindowDays
	if horizonDays < historyDays {
		historyDays = horizonDays
	}
	avgIncome, avgExpenses := dailyAverages(in.History, historyDays)
	recurring := detectRecurring(in.History)
	scheduledIncome := scheduleSalesIncome(in.PendingSales, now, horizonDays)
	scheduledExpenses := schedulePurchaseExpenses(in.PendingPurchases, now, horizonDays)

	lowCashFloor := in.CurrentBalance.Mul(decimal.NewFromFloat(lowCashRatio))

	proj := &CashFlowProjection{
		CurrentBalance: in.CurrentBalance.Round(2),
		Days:           make([]DayProjection, 0, horizonDays),
	}

	running := in.CurrentBalance
	for i := 1; i <= horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		key := dayKey(date)
		dayOfMonth := date.Day()

		income, incomeScheduled := scheduledIncome[key]
		for _, r := range recurring {
			if r.Type == entity.TransactionIncome && absInt(r.DayOfMonth-dayOfMonth) <= recurringDayTolerance {
				income = income.Add(r.Amount)
			}
		}
		if income.IsZero() {
			income = avgIncome
		}

		expenses, expenseScheduled := scheduledExpenses[key]
		for _, r := range recurring {
			if r.Type == entity.TransactionExpense && absInt(r.DayOfMonth-dayOfMonth) <= recurringDayTolerance {
				expenses = expenses.Add(r.Amount)
			}
		}
		if expenses.IsZero() {
			expenses = avgExpenses
		}

		running = running.Add(income).Sub(expenses)

		confidence := ConfidenceLow
		switch {
		case incomeScheduled || expenseScheduled:
			confidence = ConfidenceHigh
		case anyRecurringNear(recurring, dayOfMonth):
			confidence = ConfidenceMedium
		}

		var alerts []string
		if running.IsNegative() {
			alerts = append(alerts, "Saldo negativo previsto")
			proj.CriticalCount++
		} else if running.LessThan(lowCashFloor) {
			alerts = append(alerts, "Alerta de caja baja")
			proj.WarningCount++
		}

		proj.Days = append(proj.Days, DayProjection{
			Date:             date,
			ProjectedBalance: running.Round(2),
			Income:           income.Round(2),
			Expenses:         expenses.Round(2),
			Confidence:       confidence,
			Alerts:           alerts,
		})
	}

	proj.Insights = buildInsights(proj, in.CurrentBalance, scheduledIncome, scheduledExpenses, len(recurring))
	return proj, nil
}

// dailyAverages promedios diarios de ingresos y egresos del período histórico.
func dailyAverages(history []entity.Transaction, historyDays int) (income, expenses decimal.Decimal) {
	var totalIncome, totalExpenses decimal.Decimal
	for _, t := range history {
		if t.Type == entity.TransactionIncome {
			totalIncome = totalIncome.Add(t.Amount)
		} else {
			totalExpenses = totalExpenses.Add(t.Amount)
		}
	}
	days := decimal.NewFromInt(int64(historyDays))
	return totalIncome.Div(days), totalExpenses.Div(days)
}

// detectRecurring agrupa por (tipo, monto a 2 decimales); un grupo con 3 o más
// ocurrencias se considera recurrente y se caracteriza por su día-de-mes promedio.
func detectRecurring(history []entity.Transaction) []recurringPattern {
	type group struct {
		txType entity.TransactionType
		amount decimal.Decimal
		days   []int
	}
	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, t := range history {
		amount := t.Amount.Round(2)
		key := string(t.Type) + "|" + amount.StringFixed(2)
		g, ok := groups[key]
		if !ok {
			g = &group{txType: t.Type, amount: amount}
			groups[key] = g
			order = append(order, key)
		}
		g.days = append(g.days, t.Date.Day())
	}

	var patterns []recurringPattern
	for _, key := range order {
		g := groups[key]
		if len(g.days) < recurringMinOccurrences {
			continue
		}
		sum := 0
		for _, d := range g.days {
			sum += d
		}
		patterns = append(patterns, recurringPattern{
			Type:       g.txType,
			Amount:     g.amount,
			DayOfMonth: int(math.Round(float64(sum) / float64(len(g.days)))),
		})
	}
	return patterns
}

// scheduleSalesIncome agenda los cobros estimados de órdenes de venta
// pendientes: PENDING cobra a orderDate+7 días, CONFIRMED a orderDate+3.
// Solo se agendan fechas dentro del horizonte.
func scheduleSalesIncome(orders []entity.SalesOrder, now time.Time, horizonDays int) map[string]decimal.Decimal {
	end := now.AddDate(0, 0, horizonDays)
	scheduled := make(map[string]decimal.Decimal)

	for _, o := range orders {
		paymentDays := pendingPaymentDays
		if o.Status == entity.OrderConfirmed {
			paymentDays = confirmedPaymentDays
		}
		paymentDate := o.OrderDate.AddDate(0, 0, paymentDays)
		if paymentDate.After(end) {
			continue
		}
		key := dayKey(paymentDate)
		scheduled[key] = scheduled[key].Add(o.Total)
	}
	return scheduled
}

// schedulePurchaseExpenses agenda los pagos de órdenes de compra aprobadas u
// ordenadas: en expectedDate si existe, si no a createdAt+14 días.
func schedulePurchaseExpenses(orders []entity.PurchaseOrder, now time.Time, horizonDays int) map[string]decimal.Decimal {
	end := now.AddDate(0, 0, horizonDays)
	scheduled := make(map[string]decimal.Decimal)

	for _, po := range orders {
		paymentDate := po.CreatedAt.AddDate(0, 0, purchaseFallbackDays)
		if po.ExpectedDate != nil {
			paymentDate = *po.ExpectedDate
		}
		if paymentDate.After(end) {
			continue
		}
		key := dayKey(paymentDate)
		scheduled[key] = scheduled[key].Add(po.Total)
	}
	return scheduled
}

// buildInsights arma los mensajes de resumen en orden estable.
func buildInsights(
	proj *CashFlowProjection,
	currentBalance decimal.Decimal,
	scheduledIncome, scheduledExpenses map[string]decimal.Decimal,
	recurringCount int,
) []string {
	insights := make([]string, 0, 4)

	minBalance := decimal.Zero
	firstNegative := -1
	for i, d := range proj.Days {
		if i == 0 || d.ProjectedBalance.LessThan(minBalance) {
			minBalance = d.ProjectedBalance
		}
		if firstNegative < 0 && d.ProjectedBalance.IsNegative() {
			firstNegative = i
		}
	}

	lowCashFloor := currentBalance.Mul(decimal.NewFromFloat(lowCashRatio))
	if firstNegative >= 0 {
		insights = append(insights,
			fmt.Sprintf("El flujo de caja puede volverse negativo en %d días", firstNegative+1))
	} else if len(proj.Days) > 0 && minBalance.LessThan(lowCashFloor) {
		pct := minBalance.Div(currentBalance).Mul(decimal.NewFromInt(100))
		insights = append(insights,
			fmt.Sprintf("Saldo mínimo proyectado: %s (%s%% del actual)",
				minBalance.StringFixed(2), pct.StringFixed(0)))
	}

	totalIncome := sumScheduled(scheduledIncome)
	totalExpenses := sumScheduled(scheduledExpenses)
	if totalIncome.IsPositive() {
		insights = append(insights,
			fmt.Sprintf("Se esperan %s en cobros de órdenes de venta pendientes", totalIncome.StringFixed(2)))
	}
	if totalExpenses.IsPositive() {
		insights = append(insights,
			fmt.Sprintf("Hay %s en órdenes de compra por pagar", totalExpenses.StringFixed(2)))
	}
	if recurringCount > 0 {
		insights = append(insights,
			fmt.Sprintf("Se detectaron %d patrones de transacciones recurrentes", recurringCount))
	}
	return insights
}

func sumScheduled(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

func anyRecurringNear(patterns []recurringPattern, dayOfMonth int) bool {
	for _, r := range patterns {
		if absInt(r.DayOfMonth-dayOfMonth) <= recurringDayTolerance {
			return true
		}
	}
	return false
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
