package forecast

import (
	"math"
	"time"
)

// PredictStockoutDate estima la fecha de quiebre de stock de un producto.
// Devuelve nil si no hay velocidad de ventas, si el quiebre ya ocurrió
// (días <= 0) o si queda más allá de 180 días (sin valor predictivo).
func PredictStockoutDate(currentStock int, velocity, seasonalFactor float64, now time.Time) *time.Time {
	if velocity <= 0 {
		return nil
	}
	adjusted := velocity * seasonalFactor
	daysUntil := int(math.Floor(float64(currentStock) / adjusted * 7))
	if daysUntil <= 0 || daysUntil > stockoutMaxDays {
		return nil
	}
	d := now.AddDate(0, 0, daysUntil)
	return &d
}

// SuggestedQuantity calcula la cantidad sugerida de pedido:
// stock de seguridad (máximo entre el mínimo configurado y 2 semanas de
// demanda) más la demanda durante el lead time del proveedor (14 días),
// menos el stock actual; como mínimo 1, redondeado al múltiplo de 5 superior.
func SuggestedQuantity(currentStock, minStock int, velocity, seasonalFactor float64) int {
	weeklyDemand := velocity * seasonalFactor

	safetyStock := int(math.Ceil(weeklyDemand * safetyStockWeeks))
	if minStock > safetyStock {
		safetyStock = minStock
	}
	leadTimeDemand := int(math.Ceil(weeklyDemand / 7 * supplierLeadTimeDays))

	qty := safetyStock + leadTimeDemand - currentStock
	if qty < 1 {
		qty = 1
	}
	return int(math.Ceil(float64(qty)/reorderRoundTo)) * reorderRoundTo
}

// NeedsReorder regla de inclusión: se sugiere pedido solo si el stock está
// bajo el mínimo o si se predice quiebre dentro de 30 días. Un producto sin
// velocidad de ventas pero con stock adecuado no genera sugerencia.
func NeedsReorder(currentStock, minStock int, stockout *time.Time, now time.Time) bool {
	if currentStock < minStock {
		return true
	}
	return stockout != nil && daysUntil(*stockout, now) <= reorderWindowDays
}

// ClassifyUrgency prioriza la sugerencia:
// critical bajo el 50% del mínimo; high bajo el mínimo o quiebre en menos de
// 7 días; medium con quiebre en menos de 14 días; low en el resto.
func ClassifyUrgency(currentStock, minStock int, stockout *time.Time, now time.Time) Urgency {
	if float64(currentStock) < float64(minStock)*criticalStockRatio {
		return UrgencyCritical
	}
	if currentStock < minStock || (stockout != nil && daysUntil(*stockout, now) < urgentStockoutDays) {
		return UrgencyHigh
	}
	if stockout != nil && daysUntil(*stockout, now) < mediumStockoutDays {
		return UrgencyMedium
	}
	return UrgencyLow
}

// ClassifyReorderConfidence respalda la sugerencia según la evidencia:
// high con velocidad positiva y 20+ líneas históricas, medium con 5+,
// low en el resto (la sugerencia cae a la lógica de stock mínimo).
func ClassifyReorderConfidence(velocity float64, historyLines int) Confidence {
	if velocity > 0 && historyLines >= confHighMinLines {
		return ConfidenceHigh
	}
	if velocity > 0 && historyLines >= confMediumMinLines {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

func daysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
